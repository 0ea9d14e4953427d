package domain

import "strings"

// Artifact is a filesystem path treated as a node of the rule graph.
//
// The path is expected to be canonical (absolute, symlinks resolved) by the time
// an Artifact is built; canonicalization is the job of ports.PathCanonicalizer so
// that two spellings of the same file map to the same node.
type Artifact struct {
	path InternedString
}

// NewArtifact creates an Artifact for an already canonical path.
func NewArtifact(path string) Artifact {
	return Artifact{path: NewInternedString(path)}
}

// NewArtifacts creates Artifacts for the given canonical paths, preserving order.
func NewArtifacts(paths []string) []Artifact {
	res := make([]Artifact, len(paths))
	for i, p := range paths {
		res[i] = NewArtifact(p)
	}
	return res
}

// Path returns the canonical filesystem path.
func (a Artifact) Path() string {
	return a.path.String()
}

// String implements fmt.Stringer.
func (a Artifact) String() string {
	return a.path.String()
}

// IsZero reports whether the artifact has no path.
func (a Artifact) IsZero() bool {
	return a.path == InternedString{}
}

// ArtifactPaths returns the paths of the given artifacts, preserving order.
func ArtifactPaths(artifacts []Artifact) []string {
	res := make([]string, len(artifacts))
	for i, a := range artifacts {
		res[i] = a.Path()
	}
	return res
}

func joinArtifacts(artifacts []Artifact) string {
	return strings.Join(ArtifactPaths(artifacts), ", ")
}
