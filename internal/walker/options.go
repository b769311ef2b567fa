// Package walker handles directory traversal and file processing
package walker

import (
	"path/filepath"

	"github.com/bethropolis/codebase-dump/internal/binary"
	"github.com/bethropolis/codebase-dump/internal/utils"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger       utils.Logger
	ExcludeNames map[string]struct{}
	SkipHidden   bool // prune directories whose name starts with '.'
	Patterns     PatternMatcher
	Ignore       IgnoreChecker
	SkipBinary   bool
	IsBinary     func(path string) (bool, error)
	OutputPath   string // absolute path excluded from its own dump
	IncludeDirs  bool   // add accepted directories to Result.Entries
	DisplayOrder bool   // directories before files, case-insensitive by name
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:   utils.NoopLogger{},
		IsBinary: binary.IsFileBinary,
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithExcludeNames sets literal names pruned as directories and rejected
// when they appear as any segment of a file path.
func WithExcludeNames(names []string) Option {
	return func(opts *WalkOptions) {
		set := make(map[string]struct{}, len(names))
		for _, name := range names {
			if name != "" {
				set[name] = struct{}{}
			}
		}
		opts.ExcludeNames = set
	}
}

// WithHiddenDirs enables or disables pruning of dot-directories
func WithHiddenDirs(skip bool) Option {
	return func(opts *WalkOptions) {
		opts.SkipHidden = skip
	}
}

// WithPatterns sets the exclude pattern matcher
func WithPatterns(m PatternMatcher) Option {
	return func(opts *WalkOptions) {
		opts.Patterns = m
	}
}

// WithIgnore sets the ignore-rule checker
func WithIgnore(c IgnoreChecker) Option {
	return func(opts *WalkOptions) {
		opts.Ignore = c
	}
}

// WithBinaryDetection enables skipping of binary files
func WithBinaryDetection(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.SkipBinary = enabled
	}
}

// WithBinaryClassifier replaces the binary detector
func WithBinaryClassifier(fn func(path string) (bool, error)) Option {
	return func(opts *WalkOptions) {
		if fn != nil {
			opts.IsBinary = fn
		}
	}
}

// WithOutputPath excludes the file being written from the walk
func WithOutputPath(path string) Option {
	return func(opts *WalkOptions) {
		if path == "" {
			opts.OutputPath = ""
			return
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		opts.OutputPath = filepath.Clean(path)
	}
}

// WithDirectories adds accepted directories to the result
func WithDirectories(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.IncludeDirs = enabled
	}
}

// WithDisplayOrder sorts each level with directories first, case-insensitively
func WithDisplayOrder(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.DisplayOrder = enabled
	}
}
