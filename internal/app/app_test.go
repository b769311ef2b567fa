package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/codebase-dump/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func dumpConfig(src, out string) *config.Config {
	return &config.Config{
		Source:          src,
		Output:          out,
		Exclude:         config.DefaultExclude,
		ExcludePatterns: config.DefaultExcludePatterns,
	}
}

func TestApp_DumpsAcceptedFiles(t *testing.T) {
	src := filepath.Join(t.TempDir(), "project")
	write(t, src, "a.py", "print(1)")
	write(t, src, ".gitignore", "*.log\n")
	write(t, src, "b.log", "noise")
	out := filepath.Join(t.TempDir(), "nested", "dump.md")

	var status bytes.Buffer
	require.NoError(t, New(dumpConfig(src, out), &status).Run())

	dump, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(dump)
	assert.Contains(t, text, "# Code Dump: project\n\n")
	assert.Contains(t, text, "## a.py\n\n```python\nprint(1)\n```\n\n")
	assert.NotContains(t, text, "b.log")

	assert.Contains(t, status.String(), " - Files dumped: 2\n")
	assert.Contains(t, status.String(), "   - Skipped (.gitignore): 1\n")
	assert.Contains(t, status.String(), "Output written to: "+out)
}

func TestApp_OutputInsideSourceIsNotDumped(t *testing.T) {
	src := t.TempDir()
	write(t, src, "main.go", "package main\n")
	out := filepath.Join(src, "dump.md")

	cfg := dumpConfig(src, out)
	require.NoError(t, New(cfg, &bytes.Buffer{}).Run())
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	cfg.Force = true
	var status bytes.Buffer
	require.NoError(t, New(cfg, &status).Run())
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.NotContains(t, string(second), "## dump.md")
	assert.Contains(t, status.String(), "   - Skipped (Output File): 1\n")
}

func TestApp_SymlinkedSourceSkipsOutput(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "target")
	write(t, target, "main.go", "package main\n")
	out := filepath.Join(target, "zz_out.md")
	write(t, target, "zz_out.md", "# stale dump")
	link := filepath.Join(base, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	cfg := dumpConfig(link, out)
	cfg.Force = true
	var status bytes.Buffer
	require.NoError(t, New(cfg, &status).Run())

	dump, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(dump), "## main.go")
	assert.NotContains(t, string(dump), "## zz_out.md")
	assert.Contains(t, status.String(), " - Files dumped: 1\n")
	assert.Contains(t, status.String(), "   - Skipped (Output File): 1\n")
}

func TestApp_ShowSkippedListsItems(t *testing.T) {
	src := t.TempDir()
	write(t, src, "node_modules/x.js", "x")
	write(t, src, "keep.txt", "x")

	cfg := dumpConfig(src, filepath.Join(t.TempDir(), "d.md"))
	cfg.ShowSkipped = true
	cfg.Quiet = true

	var status bytes.Buffer
	require.NoError(t, New(cfg, &status).Run())
	assert.Contains(t, status.String(), "Skipped DIR : node_modules")
	assert.NotContains(t, status.String(), "Source Directory:", "quiet hides info lines")
}

func TestApp_InvalidExcludePatternFails(t *testing.T) {
	cfg := dumpConfig(t.TempDir(), filepath.Join(t.TempDir(), "d.md"))
	cfg.ExcludePatterns = []string{"[unclosed"}

	err := New(cfg, &bytes.Buffer{}).Run()
	require.Error(t, err)
	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr), "no output is created before the walk is configured")
}

func TestTreeApp_PrintsFilteredTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "repo")
	write(t, root, ".gitignore", "*.log\n")
	write(t, root, ".git/HEAD", "ref")
	write(t, root, "src/main.go", "x")
	write(t, root, "debug.log", "x")
	write(t, root, "README.md", "x")

	var out, errOut bytes.Buffer
	require.NoError(t, NewTree(&config.TreeConfig{Directory: root}, &out, &errOut).Run())

	want := "repo/ (" + root + ")\n" +
		"├── src/\n" +
		"│   └── main.go\n" +
		"├── .gitignore\n" +
		"└── README.md\n"
	assert.Equal(t, want, out.String())
	assert.Empty(t, errOut.String())
}

func TestTreeApp_UsesParentIgnoreFile(t *testing.T) {
	repo := t.TempDir()
	write(t, repo, ".gitignore", "sub/skip.txt\n")
	write(t, repo, "sub/skip.txt", "x")
	write(t, repo, "sub/keep.txt", "x")

	var out bytes.Buffer
	require.NoError(t, NewTree(&config.TreeConfig{Directory: filepath.Join(repo, "sub")}, &out, &bytes.Buffer{}).Run())

	want := "sub/ (" + repo + ")\n" +
		"└── keep.txt\n"
	assert.Equal(t, want, out.String())
}
