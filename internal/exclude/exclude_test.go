package exclude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFile(t *testing.T) {
	m, err := New([]string{"*.log", "docs/?.md", "src/[ab]*.go", "**/tmp/*"})
	require.NoError(t, err)

	tests := []struct {
		rel     string
		want    bool
		pattern string
	}{
		{"debug.log", true, "*.log"},
		{"nested/debug.log", false, ""}, // '*' does not cross '/'
		{"docs/a.md", true, "docs/?.md"},
		{"docs/ab.md", false, ""},
		{"src/alpha.go", true, "src/[ab]*.go"},
		{"src/cat.go", false, ""},
		{"x/y/tmp/file.txt", true, "**/tmp/*"},
		{"tmp/file.txt", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			pattern, ok := m.MatchFile(tt.rel)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.pattern, pattern)
		})
	}
}

func TestMatchDir_NormalizesTrailingWildcard(t *testing.T) {
	m, err := New([]string{"**/build/*", "vendor/", "gen/*"})
	require.NoError(t, err)

	tests := []struct {
		rel     string
		want    bool
		pattern string
	}{
		{"pkg/build", true, "**/build/*"},
		{"a/b/build", true, "**/build/*"},
		{"vendor", true, "vendor/"},
		{"gen", true, "gen/*"},
		{"pkg/gen", false, ""},
		{"builder", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			pattern, ok := m.MatchDir(tt.rel)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.pattern, pattern)
		})
	}
}

// A recursive-anchor pattern also matches a root-level name. This pins the
// observed fallback rather than deriving it from glob semantics: the bare
// glob "**/build" needs a '/' before "build".
func TestRecursiveAnchorRootLevelFallback_Pinned(t *testing.T) {
	m, err := New([]string{"**/build/*", "**/*.tmp"})
	require.NoError(t, err)

	pattern, ok := m.MatchDir("build")
	assert.True(t, ok)
	assert.Equal(t, "**/build/*", pattern)

	pattern, ok = m.MatchFile("scratch.tmp")
	assert.True(t, ok)
	assert.Equal(t, "**/*.tmp", pattern)

	// The fallback never applies to nested paths.
	_, ok = m.MatchDir("x/builder")
	assert.False(t, ok)
	// Nor does it strip the anchor for a file pattern still carrying "/*".
	_, ok = m.MatchFile("build")
	assert.False(t, ok)
}

func TestFirstMatchWinsInDeclarationOrder(t *testing.T) {
	m, err := New([]string{"**/Archive/*", "*"})
	require.NoError(t, err)

	pattern, ok := m.MatchDir("Archive")
	require.True(t, ok)
	assert.Equal(t, "**/Archive/*", pattern)

	pattern, ok = m.MatchDir("other")
	require.True(t, ok)
	assert.Equal(t, "*", pattern)
}

func TestNilAndEmptyMatcher(t *testing.T) {
	var m *Matcher
	_, ok := m.MatchFile("a")
	assert.False(t, ok)
	assert.Nil(t, m.Patterns())

	empty, err := New([]string{"", "  "})
	require.NoError(t, err)
	assert.Empty(t, empty.Patterns())
	_, ok = empty.MatchDir("a")
	assert.False(t, ok)
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New([]string{"[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[unclosed")
}

func TestDirPattern(t *testing.T) {
	assert.Equal(t, "**/foo", DirPattern("**/foo/*"))
	assert.Equal(t, "**/foo", DirPattern("**/foo/"))
	assert.Equal(t, "*.log", DirPattern("*.log"))
}
