package fs

import (
	"path/filepath"

	"go.trai.ch/snake/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathCanonicalizer = (*Canonicalizer)(nil)

// Canonicalizer resolves path spellings to absolute, symlink-free paths.
type Canonicalizer struct{}

// NewCanonicalizer creates a new Canonicalizer.
func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{}
}

// Canonicalize joins path onto base unless it is absolute, then resolves symlinks in
// the longest prefix that can be resolved. Components that do not exist yet, such as
// outputs that have not been built, are appended lexically.
func (c *Canonicalizer) Canonicalize(base, path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to make path absolute"), "path", path)
	}

	existing, rest := abs, ""
	for {
		if resolved, err := filepath.EvalSymlinks(existing); err == nil {
			return filepath.Join(resolved, rest), nil
		}

		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}
		rest = filepath.Join(filepath.Base(existing), rest)
		existing = parent
	}
}
