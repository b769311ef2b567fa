// Package exclude matches caller-supplied glob patterns against paths
// relative to the scan root.
//
// Patterns use '/' as the separator: '*' and '?' stay within one segment,
// '[...]' is a character class and '**' spans any number of segments.
// A pattern starting with "**/" additionally matches a root-level path
// (one with no '/') against the remainder after the anchor, so "**/build"
// matches both "a/build" and "build".
package exclude

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// recursiveAnchor is the prefix meaning "at any depth".
const recursiveAnchor = "**/"

type pattern struct {
	raw  string
	full glob.Glob
	bare glob.Glob // remainder after recursiveAnchor, nil for unanchored patterns
}

func compile(raw, expr string) (pattern, error) {
	full, err := glob.Compile(expr, '/')
	if err != nil {
		return pattern{}, fmt.Errorf("exclude: invalid pattern %q: %w", raw, err)
	}
	p := pattern{raw: raw, full: full}
	if rest, ok := strings.CutPrefix(expr, recursiveAnchor); ok {
		if p.bare, err = glob.Compile(rest, '/'); err != nil {
			return pattern{}, fmt.Errorf("exclude: invalid pattern %q: %w", raw, err)
		}
	}
	return p, nil
}

func (p pattern) match(rel string) bool {
	if p.full.Match(rel) {
		return true
	}
	// Root-level fallback for anchored patterns. Kept as observed behavior.
	return p.bare != nil && !strings.Contains(rel, "/") && p.bare.Match(rel)
}

// Matcher evaluates an ordered list of exclude patterns. The zero value and a
// nil *Matcher exclude nothing.
type Matcher struct {
	files []pattern
	dirs  []pattern
}

// New compiles patterns in declaration order.
func New(patterns []string) (*Matcher, error) {
	m := &Matcher{
		files: make([]pattern, 0, len(patterns)),
		dirs:  make([]pattern, 0, len(patterns)),
	}
	for _, raw := range patterns {
		raw = strings.TrimSpace(filepath.ToSlash(raw))
		if raw == "" {
			continue
		}
		fp, err := compile(raw, raw)
		if err != nil {
			return nil, err
		}
		dp, err := compile(raw, DirPattern(raw))
		if err != nil {
			return nil, err
		}
		m.files = append(m.files, fp)
		m.dirs = append(m.dirs, dp)
	}
	return m, nil
}

// DirPattern rewrites a pattern so it names a directory itself rather than
// its children: a trailing "/*" or "/" is removed.
func DirPattern(raw string) string {
	if trimmed, ok := strings.CutSuffix(raw, "/*"); ok {
		return trimmed
	}
	return strings.TrimSuffix(raw, "/")
}

// Patterns returns the raw patterns in declaration order.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.files))
	for i, p := range m.files {
		out[i] = p.raw
	}
	return out
}

// MatchFile reports the first pattern matching the file path rel.
func (m *Matcher) MatchFile(rel string) (string, bool) {
	if m == nil {
		return "", false
	}
	return first(m.files, filepath.ToSlash(rel))
}

// MatchDir reports the first pattern that, normalized with DirPattern,
// matches the directory path rel.
func (m *Matcher) MatchDir(rel string) (string, bool) {
	if m == nil {
		return "", false
	}
	return first(m.dirs, filepath.ToSlash(rel))
}

func first(patterns []pattern, rel string) (string, bool) {
	for _, p := range patterns {
		if p.match(rel) {
			return p.raw, true
		}
	}
	return "", false
}
