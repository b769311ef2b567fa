package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/codebase-dump/internal/config"
	"github.com/bethropolis/codebase-dump/internal/utils"
	"github.com/bethropolis/codebase-dump/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func accepted(t *testing.T, root string, opts []walker.Option) []string {
	t.Helper()
	var paths []string
	_, err := walker.Walk(root, func(e walker.FileEntry, _ []byte) error {
		paths = append(paths, e.RelativePath)
		return nil
	}, opts...)
	require.NoError(t, err)
	return paths
}

func TestConfigureWalker_AppliesEveryFilter(t *testing.T) {
	root := t.TempDir()
	write(t, root, ".gitignore", "*.log\n")
	write(t, root, "a.py", "print(1)")
	write(t, root, "b.log", "x")
	write(t, root, "node_modules/x.js", "x")
	write(t, root, "Archive/old.txt", "x")
	write(t, root, ".cache/tmp", "x")
	write(t, root, "dump.md", "previous")

	cfg := &config.Config{
		Source:          root,
		Output:          filepath.Join(root, "dump.md"),
		Exclude:         config.DefaultExclude,
		ExcludePatterns: config.DefaultExcludePatterns,
	}

	var info []string
	rules, opts, err := ConfigureWalker(cfg, nil, func(format string, args ...interface{}) {
		info = append(info, format)
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rules.Len(), 1)
	assert.Contains(t, info, "Found patterns in %d .gitignore files.")

	assert.ElementsMatch(t, []string{".gitignore", "a.py"}, accepted(t, root, opts))
}

func TestConfigureWalker_NestedIgnores(t *testing.T) {
	root := t.TempDir()
	write(t, root, "pkg/.gitignore", "generated.go\n")
	write(t, root, "pkg/generated.go", "x")
	write(t, root, "pkg/real.go", "x")
	write(t, root, "node_modules/.gitignore", "*\n")

	cfg := &config.Config{Source: root, Output: filepath.Join(t.TempDir(), "out.md"), Exclude: []string{"node_modules"}}

	_, opts, err := ConfigureWalker(cfg, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, accepted(t, root, opts), "pkg/generated.go", "nested files are only read on request")

	cfg.NestedIgnores = true
	rules, opts, err := ConfigureWalker(cfg, nil, nil)
	require.NoError(t, err)
	paths := accepted(t, root, opts)
	assert.NotContains(t, paths, "pkg/generated.go")
	assert.Contains(t, paths, "pkg/real.go")
	for _, scope := range rules.Scopes() {
		assert.NotContains(t, scope, "node_modules")
	}
}

func TestConfigureWalker_InvalidPattern(t *testing.T) {
	cfg := &config.Config{Source: t.TempDir(), Output: "out.md", ExcludePatterns: []string{"[unclosed"}}
	_, _, err := ConfigureWalker(cfg, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exclude patterns")
}

func TestConfigureTree_HidesIgnoredAndGitDir(t *testing.T) {
	root := t.TempDir()
	write(t, root, ".gitignore", "*.log\n")
	write(t, root, ".git/HEAD", "ref")
	write(t, root, "a.py", "x")
	write(t, root, "b.log", "x")
	write(t, root, "src/c.go", "x")

	log := &utils.RecordingLogger{}
	matcher, opts, err := ConfigureTree(&config.TreeConfig{Directory: root}, log)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".gitignore"), matcher.Source)

	result, err := walker.Walk(root, nil, opts...)
	require.NoError(t, err)

	var paths []string
	for _, e := range result.Entries {
		paths = append(paths, e.RelativePath)
	}
	assert.Equal(t, []string{"src", "src/c.go", ".gitignore", "a.py"}, paths)
}
