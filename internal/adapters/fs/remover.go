package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/snake/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputRemover = (*Remover)(nil)

// Remover deletes output files.
type Remover struct{}

// NewRemover creates a new Remover.
func NewRemover() *Remover {
	return &Remover{}
}

// Remove deletes each path that exists. Directories are removed with their contents.
// It keeps going after a failure and returns every error it met.
func (r *Remover) Remove(paths []string) ([]string, error) {
	var (
		removed []string
		errs    error
	)
	for _, path := range paths {
		if _, err := os.Lstat(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path))
			}
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove output"), "path", path))
			continue
		}
		removed = append(removed, path)
	}
	return removed, errs
}
