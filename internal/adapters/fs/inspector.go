// Package fs implements the filesystem ports on top of the local disk.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileInspector = (*Inspector)(nil)

// Inspector reports existence and modification times using os.Stat.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Stat returns the state of path, following symlinks.
func (i *Inspector) Stat(path string) (domain.FileState, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.FileState{}, nil
		}
		return domain.FileState{}, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", path)
	}
	return domain.FileState{Exists: true, ModTime: info.ModTime()}, nil
}
