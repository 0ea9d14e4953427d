package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snake/internal/adapters/fs"
)

// tempDir returns a symlink-free temporary directory.
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestInspector_Stat(t *testing.T) {
	dir := tempDir(t)
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path, "a")
	mtime := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	inspector := fs.NewInspector()

	state, err := inspector.Stat(path)
	require.NoError(t, err)
	assert.True(t, state.Exists)
	assert.True(t, mtime.Equal(state.ModTime))

	state, err = inspector.Stat(filepath.Join(dir, "missing.txt"))
	require.NoError(t, err)
	assert.False(t, state.Exists)
}

func TestCanonicalizer_Canonicalize(t *testing.T) {
	dir := tempDir(t)
	writeFile(t, filepath.Join(dir, "real", "data.txt"), "data")
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")))

	c := fs.NewCanonicalizer()

	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"Relative", dir, "real/data.txt", filepath.Join(dir, "real", "data.txt")},
		{"Absolute", "/elsewhere", filepath.Join(dir, "real", "data.txt"), filepath.Join(dir, "real", "data.txt")},
		{"DotSegments", filepath.Join(dir, "real"), "../real/./data.txt", filepath.Join(dir, "real", "data.txt")},
		{"SymlinkedFile", dir, "link/data.txt", filepath.Join(dir, "real", "data.txt")},
		{"MissingUnderSymlink", dir, "link/out/new.txt", filepath.Join(dir, "real", "out", "new.txt")},
		{"Missing", dir, "nowhere/b.txt", filepath.Join(dir, "nowhere", "b.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Canonicalize(tt.base, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalizer_SpellingsCollapse(t *testing.T) {
	dir := tempDir(t)
	writeFile(t, filepath.Join(dir, "real", "data.txt"), "data")
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")))

	c := fs.NewCanonicalizer()
	viaLink, err := c.Canonicalize(dir, "link/data.txt")
	require.NoError(t, err)
	direct, err := c.Canonicalize(filepath.Join(dir, "real"), "data.txt")
	require.NoError(t, err)

	assert.Equal(t, direct, viaLink)
}

func TestRemover_Remove(t *testing.T) {
	dir := tempDir(t)
	file := filepath.Join(dir, "out.txt")
	nested := filepath.Join(dir, "outdir")
	writeFile(t, file, "out")
	writeFile(t, filepath.Join(nested, "part"), "part")

	removed, err := fs.NewRemover().Remove([]string{file, filepath.Join(dir, "never-built"), nested})
	require.NoError(t, err)
	assert.Equal(t, []string{file, nested}, removed)

	assert.NoFileExists(t, file)
	assert.NoDirExists(t, nested)
}

func TestRemover_Remove_Nothing(t *testing.T) {
	removed, err := fs.NewRemover().Remove(nil)
	require.NoError(t, err)
	assert.Empty(t, removed)
}
