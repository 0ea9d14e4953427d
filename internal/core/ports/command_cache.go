package ports

import "go.trai.ch/snake/internal/core/domain"

// CommandCache persists the last command text each rule ran with.
//
//go:generate go run go.uber.org/mock/mockgen -source=command_cache.go -destination=mocks/mock_command_cache.go -package=mocks
type CommandCache interface {
	// Get returns the record stored under key in stateDir.
	// Returns nil, nil if there is none.
	Get(stateDir string, key domain.CacheKey) (*domain.CommandRecord, error)

	// Put stores record in stateDir, replacing any previous one.
	Put(stateDir string, record domain.CommandRecord) error

	// Delete removes the record stored under key. A missing record is not an error.
	Delete(stateDir string, key domain.CacheKey) error
}
