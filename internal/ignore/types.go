package ignore

import (
	"github.com/bethropolis/codebase-dump/internal/utils"
	"github.com/gobwas/glob"
)

// FileName is the per-directory ignore file looked up by both tools.
const FileName = ".gitignore"

// GitDirName is the version-control metadata directory the tree tool always hides.
const GitDirName = ".git"

// rule is one compiled line of an ignore file.
type rule struct {
	raw      string
	name     string // pattern without leading or trailing '/'
	dirOnly  bool   // pattern ended in '/'
	anchored bool   // pattern started with '/'
	self     glob.Glob
	under    glob.Glob // name + "/**": anything below a matched path
}

// RuleSet holds the patterns of one ignore file, scoped to the directory containing it.
type RuleSet struct {
	Scope       string   // absolute directory owning the rules
	Patterns    []string // raw patterns in file order, blanks and comments removed
	Unsupported []string // negated patterns, which never match
	rules       []rule
}

// Rules maps scope directories to their rule sets. A path is ignored when any
// rule set whose scope contains it has a matching pattern.
type Rules struct {
	scopes map[string]*RuleSet
	logger utils.Logger
}

// options configures discovery.
type options struct {
	logger   utils.Logger
	fileName string
	skipDir  func(name string) bool
	extra    []string
}

func defaultOptions() options {
	return options{
		logger:   utils.NoopLogger{},
		fileName: FileName,
		skipDir:  func(name string) bool { return name == GitDirName },
		extra:    []string{GitDirName},
	}
}
