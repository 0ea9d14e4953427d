package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snake/internal/core/domain"
)

func newRule(outputs, inputs []string, cmd string) *domain.Rule {
	return domain.NewRule(domain.NewArtifacts(outputs), domain.NewArtifacts(inputs), cmd)
}

func TestRule_String(t *testing.T) {
	r := newRule([]string{"/w/b", "/w/b.idx"}, []string{"/w/a"}, "sort $INPUT0 > $OUTPUT0")
	assert.Equal(t, "/w/b, /w/b.idx <- /w/a", r.String())
}

func TestRule_Script(t *testing.T) {
	r := newRule([]string{"/w/out dir/b"}, []string{"/w/a", "/w/it's"}, "cat $INPUT0 $INPUT1 > \"$OUTPUT0\"")

	lines := strings.SplitN(r.Script(), "\n", 2)
	require.Len(t, lines, 2)
	assert.Equal(t, `INPUT0='/w/a'; INPUT1='/w/it'\''s'; OUTPUT0='/w/out dir/b';`, lines[0])
	assert.Equal(t, r.Command(), lines[1])
}

func TestRule_Bindings(t *testing.T) {
	r := newRule([]string{"/w/b", "/w/c"}, []string{"/w/a"}, "true")
	assert.Equal(t, []string{"INPUT0=/w/a", "OUTPUT0=/w/b", "OUTPUT1=/w/c"}, r.Bindings())
}

func TestRule_CacheKey(t *testing.T) {
	t.Run("depends only on outputs", func(t *testing.T) {
		a := newRule([]string{"/w/b"}, []string{"/w/a"}, "cp $INPUT0 $OUTPUT0")
		b := newRule([]string{"/w/b"}, []string{"/w/x", "/w/y"}, "something else")
		assert.Equal(t, a.CacheKey(), b.CacheKey())
		assert.Len(t, string(a.CacheKey()), 16)
	})

	t.Run("output order matters", func(t *testing.T) {
		a := newRule([]string{"/w/b", "/w/c"}, nil, "true")
		b := newRule([]string{"/w/c", "/w/b"}, nil, "true")
		assert.NotEqual(t, a.CacheKey(), b.CacheKey())
	})

	t.Run("separator prevents concatenation collisions", func(t *testing.T) {
		a := newRule([]string{"/w/ab", "/w/c"}, nil, "true")
		b := newRule([]string{"/w/a", "b/w/c"}, nil, "true")
		assert.NotEqual(t, a.CacheKey(), b.CacheKey())
	})
}

func TestRule_IsImmutable(t *testing.T) {
	outputs := domain.NewArtifacts([]string{"/w/b"})
	r := domain.NewRule(outputs, nil, "true")
	outputs[0] = domain.NewArtifact("/w/changed")

	assert.Equal(t, "/w/b", r.Outputs()[0].Path())
	assert.True(t, r.Produces(domain.NewArtifact("/w/b")))
	assert.False(t, r.Produces(domain.NewArtifact("/w/changed")))
}
