// Package cas implements the command cache as one JSON record per rule.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/core/ports"
	"go.trai.ch/zerr"
)

const recordPrefix = "cmd_"

var _ ports.CommandCache = (*Store)(nil)

// Store implements ports.CommandCache with files named cmd_<key>.json inside the
// workflow's state directory.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// RecordPath returns the file holding the record for key.
func RecordPath(stateDir string, key domain.CacheKey) string {
	return filepath.Join(stateDir, recordPrefix+string(key)+".json")
}

// Get returns the record for key, or nil if none was stored.
func (s *Store) Get(stateDir string, key domain.CacheKey) (*domain.CommandRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := RecordPath(stateDir, key)
	//nolint:gosec // Path is built from the state directory and a hex digest
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(domain.WrapKind(domain.ErrCacheRead, err), "path", path)
	}

	var record domain.CommandRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(domain.WrapKind(domain.ErrCacheRead, err), "path", path)
	}
	return &record, nil
}

// Put writes record, replacing any previous one. The file is replaced atomically so
// an interrupted write never leaves a truncated record behind.
func (s *Store) Put(stateDir string, record domain.CommandRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return domain.WrapKind(domain.ErrCacheWrite, err)
	}

	if err := os.MkdirAll(stateDir, 0o750); err != nil {
		return zerr.With(domain.WrapKind(domain.ErrCacheWrite, err), "path", stateDir)
	}

	path := RecordPath(stateDir, record.Key)
	tmp, err := os.CreateTemp(stateDir, recordPrefix+"*.tmp")
	if err != nil {
		return zerr.With(domain.WrapKind(domain.ErrCacheWrite, err), "path", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(domain.WrapKind(domain.ErrCacheWrite, err), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(domain.WrapKind(domain.ErrCacheWrite, err), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(domain.WrapKind(domain.ErrCacheWrite, err), "path", path)
	}
	return nil
}

// Delete removes the record for key. A missing record is not an error.
func (s *Store) Delete(stateDir string, key domain.CacheKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := RecordPath(stateDir, key)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(domain.WrapKind(domain.ErrCacheWrite, err), "path", path)
	}
	return nil
}
