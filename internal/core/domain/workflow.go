package domain

import "path/filepath"

// StateDirName is the name of the directory, next to the workflow file, that holds
// the per-rule command records.
const StateDirName = ".snake"

// Workflow is the handle of one invocation: where the workflow was read from and the
// registry built from it. Engine components receive it explicitly instead of
// sharing global graph state.
type Workflow struct {
	// Path is the absolute path of the workflow file.
	Path string
	// Root is the directory containing the workflow file. Commands run from here.
	Root string
	// StateDir holds the command records of this workflow.
	StateDir string
	// Registry holds the workflow's rules.
	Registry *Registry
}

// NewWorkflow creates a Workflow for the file at path.
func NewWorkflow(path string, registry *Registry) *Workflow {
	root := filepath.Dir(path)
	return &Workflow{
		Path:     path,
		Root:     root,
		StateDir: filepath.Join(root, StateDirName),
		Registry: registry,
	}
}
