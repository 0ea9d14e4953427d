// Package config loads workflow files into rule registries.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Candidates are the workflow file names looked up by Discover, in order of preference.
var Candidates = []string{"Snakefile.yaml", "Snakefile.yml", "Snakefile.hcl"}

var _ ports.WorkflowLoader = (*Loader)(nil)

// Loader implements ports.WorkflowLoader for YAML and HCL workflow files.
type Loader struct {
	canonicalizer ports.PathCanonicalizer
	logger        ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(canonicalizer ports.PathCanonicalizer, logger ports.Logger) *Loader {
	return &Loader{canonicalizer: canonicalizer, logger: logger}
}

// Discover searches dir and then its parents for the first candidate workflow file.
func (l *Loader) Discover(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve directory"), "dir", dir)
	}

	for current := abs; ; current = filepath.Dir(current) {
		for _, name := range Candidates {
			candidate := filepath.Join(current, name)
			info, statErr := os.Stat(candidate)
			if statErr == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		if filepath.Dir(current) == current {
			return "", zerr.With(domain.ErrWorkflowNotFound, "dir", abs)
		}
	}
}

// Load reads the workflow file at path and registers its rules in declaration order.
// Artifact paths are canonicalized against the directory holding the file.
func (l *Loader) Load(path string) (*domain.Workflow, error) {
	abs, err := l.canonicalizer.Canonicalize("", path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrWorkflowNotFound, "path", abs)
		}
		return nil, zerr.With(domain.WrapKind(domain.ErrWorkflowRead, err), "path", abs)
	}

	root := filepath.Dir(abs)
	var dtos []RuleDTO
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".yaml", ".yml":
		dtos, err = decodeYAML(data)
	case ".hcl":
		dtos, err = decodeHCL(abs, data, root)
	default:
		return nil, zerr.With(domain.ErrUnsupportedWorkflow, "path", abs)
	}
	if err != nil {
		return nil, zerr.With(err, "path", abs)
	}

	registry := domain.NewRegistry()
	for i, dto := range dtos {
		rule, err := l.buildRule(root, dto)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "rule_index", i), "path", abs)
		}
		if err := registry.Register(rule); err != nil {
			return nil, zerr.With(err, "path", abs)
		}
	}

	l.logger.Debug("loaded workflow " + abs)
	return domain.NewWorkflow(abs, registry), nil
}

func (l *Loader) buildRule(root string, dto RuleDTO) (*domain.Rule, error) {
	if strings.TrimSpace(dto.Cmd) == "" {
		return nil, zerr.With(domain.ErrInvalidRule, "reason", "missing cmd")
	}
	outputs, err := l.artifacts(root, dto.Outputs)
	if err != nil {
		return nil, err
	}
	inputs, err := l.artifacts(root, dto.Inputs)
	if err != nil {
		return nil, err
	}
	return domain.NewRule(outputs, inputs, dto.Cmd), nil
}

func (l *Loader) artifacts(root string, paths []string) ([]domain.Artifact, error) {
	canonical := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			return nil, zerr.With(domain.ErrInvalidRule, "reason", "empty path")
		}
		resolved, err := l.canonicalizer.Canonicalize(root, p)
		if err != nil {
			return nil, err
		}
		canonical = append(canonical, resolved)
	}
	return domain.NewArtifacts(canonical), nil
}
