package ignore

import "github.com/bethropolis/codebase-dump/internal/utils"

// Option configures rule discovery and matcher construction.
type Option func(*options)

// WithLogger routes warnings about unreadable or malformed ignore files.
func WithLogger(logger utils.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFileName changes the ignore file name looked up in each directory.
func WithFileName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.fileName = name
		}
	}
}

// WithSkipDir sets which directory names DiscoverTree does not descend into.
func WithSkipDir(skip func(name string) bool) Option {
	return func(o *options) {
		if skip != nil {
			o.skipDir = skip
		}
	}
}

// WithImplicitRules replaces the rules NewGitMatcher appends to the ignore
// file it loads. The default hides the .git directory.
func WithImplicitRules(patterns []string) Option {
	return func(o *options) {
		o.extra = patterns
	}
}
