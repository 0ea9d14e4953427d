package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of file system change.
type WatchOp int

const (
	// OpCreate is a file creation.
	OpCreate WatchOp = iota
	// OpWrite is a file modification.
	OpWrite
	// OpRemove is a file removal.
	OpRemove
	// OpRename is a file rename.
	OpRename
)

// WatchEvent is a change to one path.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher notifies about changes in a set of directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch starts watching dirs (non-recursively) until ctx is done or Close is called.
	Watch(ctx context.Context, dirs []string) error
	// Events yields changes as they happen. It ends when the watcher stops.
	Events() iter.Seq[WatchEvent]
	// Close stops the watcher and releases its resources.
	Close() error
}
