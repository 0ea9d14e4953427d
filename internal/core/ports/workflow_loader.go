// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/snake/internal/core/domain"

// WorkflowLoader turns a workflow file into a populated rule registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=workflow_loader.go -destination=mocks/mock_workflow_loader.go -package=mocks
type WorkflowLoader interface {
	// Discover returns the path of the workflow file to use when none is given
	// explicitly, looking in dir.
	Discover(dir string) (string, error)

	// Load reads the workflow at path and registers its rules in declaration order.
	// Artifact paths are canonicalized relative to the workflow's directory.
	Load(path string) (*domain.Workflow, error)
}
