package ignore

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/bethropolis/codebase-dump/internal/utils"
	"github.com/gobwas/glob"
)

// NewRuleSet compiles patterns scoped to dir. Negated patterns are recorded in
// Unsupported and never match.
func NewRuleSet(dir string, patterns []string) (*RuleSet, error) {
	set := &RuleSet{Scope: filepath.Clean(dir)}
	for _, raw := range patterns {
		if strings.HasPrefix(raw, "!") {
			set.Unsupported = append(set.Unsupported, raw)
			continue
		}
		r, ok, err := compileRule(raw)
		if err != nil {
			return nil, fmt.Errorf("ignore: scope %q: %w", set.Scope, err)
		}
		if !ok {
			continue
		}
		set.Patterns = append(set.Patterns, raw)
		set.rules = append(set.rules, r)
	}
	return set, nil
}

func compileRule(raw string) (rule, bool, error) {
	r := rule{raw: raw}
	name := raw
	if trimmed, ok := strings.CutSuffix(name, "/"); ok {
		r.dirOnly = true
		name = trimmed
	}
	if trimmed, ok := strings.CutPrefix(name, "/"); ok {
		r.anchored = true
		name = trimmed
	}
	if name == "" {
		return rule{}, false, nil
	}
	r.name = name

	var err error
	if r.self, err = glob.Compile(name, '/'); err != nil {
		return rule{}, false, fmt.Errorf("invalid pattern %q: %w", raw, err)
	}
	if r.under, err = glob.Compile(name+"/**", '/'); err != nil {
		return rule{}, false, fmt.Errorf("invalid pattern %q: %w", raw, err)
	}
	return r, true, nil
}

// match tests a scope-relative, slash-separated path.
func (r rule) match(rel string, isDir bool) bool {
	segments := strings.Split(rel, "/")
	hit := r.self.Match(rel) || r.under.Match(rel)
	if !hit && !r.anchored {
		for _, segment := range segments {
			if r.self.Match(segment) {
				hit = true
				break
			}
		}
	}
	if !hit {
		return false
	}
	if r.dirOnly {
		// The candidate itself only counts when it is a directory; an
		// ancestor segment named like the pattern always counts.
		return isDir || slices.Contains(segments[:len(segments)-1], r.name)
	}
	return true
}

// Match returns the first pattern of the set that matches rel, a path
// relative to the set's scope.
func (s *RuleSet) Match(rel string, isDir bool) (string, bool) {
	rel = filepath.ToSlash(rel)
	if rel == "" || rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	for _, r := range s.rules {
		if r.match(rel, isDir) {
			return r.raw, true
		}
	}
	return "", false
}

// NewRules returns an empty scope mapping.
func NewRules(logger utils.Logger) *Rules {
	if logger == nil {
		logger = utils.NoopLogger{}
	}
	return &Rules{scopes: make(map[string]*RuleSet), logger: logger}
}

// Add registers set under its scope, replacing any earlier set for that scope.
func (r *Rules) Add(set *RuleSet) {
	if len(set.Unsupported) > 0 {
		r.logger.Debug("ignore: %s has %d negation patterns, which are not supported", set.Scope, len(set.Unsupported))
	}
	r.scopes[set.Scope] = set
}

// Merge copies the scopes of other into r. Scopes already present are kept.
func (r *Rules) Merge(other *Rules) {
	if other == nil {
		return
	}
	for scope, set := range other.scopes {
		if _, exists := r.scopes[scope]; !exists {
			r.scopes[scope] = set
		}
	}
}

// Len reports how many ignore files contribute rules.
func (r *Rules) Len() int {
	if r == nil {
		return 0
	}
	return len(r.scopes)
}

// Scopes returns the scope directories in lexical order.
func (r *Rules) Scopes() []string {
	if r == nil {
		return nil
	}
	scopes := make([]string, 0, len(r.scopes))
	for scope := range r.scopes {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)
	return scopes
}

// RuleSet returns the set owned by scope, if any.
func (r *Rules) RuleSet(scope string) (*RuleSet, bool) {
	if r == nil {
		return nil, false
	}
	set, ok := r.scopes[filepath.Clean(scope)]
	return set, ok
}

// Match walks from the directory containing path up to the filesystem root
// and reports the first scope and pattern that match. path must be absolute.
func (r *Rules) Match(path string, isDir bool) (scope, pattern string, ok bool) {
	if r == nil || len(r.scopes) == 0 {
		return "", "", false
	}
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	for {
		if set, exists := r.scopes[dir]; exists {
			rel, err := filepath.Rel(dir, path)
			if err == nil {
				if pattern, ok := set.Match(rel, isDir); ok {
					return dir, pattern, true
				}
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", false
		}
		dir = parent
	}
}

// ShouldIgnore reports whether any applicable scope ignores the absolute path.
func (r *Rules) ShouldIgnore(path string, isDir bool) bool {
	_, _, ok := r.Match(path, isDir)
	return ok
}
