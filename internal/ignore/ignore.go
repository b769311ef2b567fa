// Package ignore resolves hierarchical .gitignore rules.
//
// Rules are collected per directory, either upward from a start directory to
// the filesystem root (Discover) or downward through a whole subtree
// (DiscoverTree). Matching is a simplification of git's semantics:
//
//   - blank lines and lines starting with '#' are skipped
//   - negation ("!pattern") is not supported; such lines are dropped
//   - a pattern without '/' matches any single segment of the scope-relative
//     path, so "*.log" also ignores "logs.log/keep.txt"
//   - a pattern ending in '/' only matches directories or paths below a
//     directory segment of that name
//   - a leading '/' anchors the pattern to its scope directory
//
// For full git semantics, including negation, use GitMatcher, which the tree
// tool builds from the nearest ignore file.
package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Parse reads ignore-file lines, dropping blanks and comments.
func Parse(r io.Reader) ([]string, error) {
	var patterns []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ignore: failed to read patterns: %w", err)
	}
	return patterns, nil
}

// LoadRuleSet parses and compiles the ignore file at path, scoped to its
// directory. Any unreadable file or invalid pattern fails the whole file.
func LoadRuleSet(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to open %q: %w", path, err)
	}
	defer f.Close()

	patterns, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("ignore: %q: %w", path, err)
	}
	return NewRuleSet(filepath.Dir(path), patterns)
}

// Discover collects ignore files from start up to the filesystem root.
// Unreadable or malformed files are logged and contribute no rules.
func Discover(start string, opts ...Option) (*Rules, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for %q: %w", start, err)
	}

	rules := NewRules(o.logger)
	for {
		rules.load(filepath.Join(dir, o.fileName))
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	o.logger.Debug("ignore.Discover: %d ignore files with rules above %s", rules.Len(), start)
	return rules, nil
}

// DiscoverTree collects every ignore file at or below root. Directories whose
// name is rejected by the WithSkipDir predicate are not entered; listing
// failures are logged and skip that subtree.
func DiscoverTree(root string, opts ...Option) (*Rules, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for %q: %w", root, err)
	}

	rules := NewRules(o.logger)
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			o.logger.Warn("ignore.DiscoverTree: skipping %q: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != absRoot && o.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == o.fileName {
			rules.load(path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("ignore: failed to walk %q: %w", absRoot, walkErr)
	}
	o.logger.Debug("ignore.DiscoverTree: %d ignore files with rules under %s", rules.Len(), absRoot)
	return rules, nil
}

// load adds the rule set at path when the file exists and yields rules.
func (r *Rules) load(path string) {
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("Could not read gitignore %s: %v", path, err)
		}
		return
	}
	if !info.Mode().IsRegular() {
		return
	}

	set, err := LoadRuleSet(path)
	if err != nil {
		r.logger.Warn("Could not read gitignore %s: %v", path, err)
		return
	}
	if len(set.Patterns) == 0 {
		return
	}
	r.logger.Debug("Found .gitignore: %s with %d patterns", path, len(set.Patterns))
	r.Add(set)
}
