package ignore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/codebase-dump/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// GitMatcher applies a single ignore file with full gitignore semantics,
// including negation, plus implicit rules (by default ".git"). Paths are
// tested relative to Root, the directory holding the ignore file.
type GitMatcher struct {
	Root   string // directory the rules are relative to
	Source string // ignore file that was loaded, empty when none was found
	repo   gitignore.GitIgnore
	logger utils.Logger
}

// FindNearest looks for the ignore file in start and then each parent
// directory, returning "" when none exists up to the filesystem root.
func FindNearest(start string, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("ignore: failed to get absolute path for %q: %w", start, err)
	}
	for {
		candidate := filepath.Join(dir, o.fileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// NewGitMatcher builds a matcher from the ignore file nearest to start. When
// no file exists the rules are rooted at start and only the implicit rules apply.
func NewGitMatcher(start string, opts ...Option) (*GitMatcher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	absStart, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for %q: %w", start, err)
	}

	source, err := FindNearest(absStart, opts...)
	if err != nil {
		return nil, err
	}

	m := &GitMatcher{Root: absStart, Source: source, logger: o.logger}

	var content []byte
	if source != "" {
		m.Root = filepath.Dir(source)
		content, err = os.ReadFile(source)
		if err != nil {
			o.logger.Warn("ignore.NewGitMatcher: could not read %s: %v", source, err)
			content = nil
		}
	}

	var buf bytes.Buffer
	buf.Write(content)
	if len(content) > 0 && !bytes.HasSuffix(content, []byte("\n")) {
		buf.WriteByte('\n')
	}
	for _, pattern := range o.extra {
		buf.WriteString(pattern)
		buf.WriteByte('\n')
	}

	m.repo = gitignore.New(&buf, m.Root, func(e gitignore.Error) bool {
		o.logger.Warn("ignore.NewGitMatcher: %s: %v", source, e)
		return true
	})
	if m.repo == nil {
		// Create an empty matcher so methods don't panic
		m.repo = gitignore.New(strings.NewReader(""), m.Root, nil)
	}

	o.logger.Debug("ignore.NewGitMatcher: root %s (source %q)", m.Root, source)
	return m, nil
}

// ShouldIgnore reports whether the absolute path is ignored.
func (m *GitMatcher) ShouldIgnore(path string, isDir bool) bool {
	if m == nil || m.repo == nil {
		return false
	}
	rel, err := filepath.Rel(m.Root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return false // never ignore the root itself or paths outside it
	}

	ignored := false
	// Defensive wrapper for library calls
	func() {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("PANIC recovered in gitignore library for path %q: %v", rel, r)
				ignored = false
			}
		}()
		if match := m.repo.Relative(rel, isDir); match != nil {
			ignored = match.Ignore()
		}
	}()

	if ignored {
		m.logger.Debug("ignore.GitMatcher: %q ignored", rel)
	}
	return ignored
}
