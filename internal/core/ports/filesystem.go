package ports

import "go.trai.ch/snake/internal/core/domain"

// FileInspector reports existence and modification time of artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileInspector interface {
	// Stat returns the state of path. A missing file is not an error.
	Stat(path string) (domain.FileState, error)
}

// PathCanonicalizer maps path spellings to a single canonical form.
type PathCanonicalizer interface {
	// Canonicalize makes path absolute relative to base and resolves symlinks in the
	// longest prefix that exists. The path itself does not need to exist.
	Canonicalize(base, path string) (string, error)
}

// OutputRemover deletes artifacts from disk.
type OutputRemover interface {
	// Remove deletes every path that exists and returns the ones it removed.
	Remove(paths []string) ([]string, error)
}
