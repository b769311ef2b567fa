// Package setup provides initialization and configuration functions
package setup

import (
	"fmt"
	"strings"

	"github.com/bethropolis/codebase-dump/internal/config"
	"github.com/bethropolis/codebase-dump/internal/exclude"
	"github.com/bethropolis/codebase-dump/internal/ignore"
	"github.com/bethropolis/codebase-dump/internal/utils"
	"github.com/bethropolis/codebase-dump/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// ConfigureWalker builds the ignore rules and walker options of the dump tool:
// literal and hidden directory pruning, exclude patterns, .gitignore rules,
// binary detection and self-exclusion of the output file.
func ConfigureWalker(cfg *config.Config, log utils.Logger, infoLog InfoLogger) (*ignore.Rules, []walker.Option, error) {
	if log == nil {
		log = utils.NoopLogger{}
	}
	if infoLog == nil {
		infoLog = func(string, ...interface{}) {}
	}

	infoLog("Exclude Dirs: %s", strings.Join(cfg.Exclude, ", "))
	if len(cfg.ExcludePatterns) > 0 {
		infoLog("Exclude Patterns: %s", strings.Join(cfg.ExcludePatterns, ", "))
	}

	patterns, err := exclude.New(cfg.ExcludePatterns)
	if err != nil {
		return nil, nil, fmt.Errorf("error compiling exclude patterns: %w", err)
	}

	// --- Collect ignore rules ---
	infoLog("Collecting .gitignore patterns...")
	rules, err := ignore.Discover(cfg.Source, ignore.WithLogger(log))
	if err != nil {
		return nil, nil, fmt.Errorf("error collecting ignore rules: %w", err)
	}
	if cfg.NestedIgnores {
		skip := pruned(cfg.Exclude)
		nested, err := ignore.DiscoverTree(cfg.Source, ignore.WithLogger(log), ignore.WithSkipDir(skip))
		if err != nil {
			return nil, nil, fmt.Errorf("error collecting nested ignore rules: %w", err)
		}
		rules.Merge(nested)
	}
	infoLog("Found patterns in %d .gitignore files.", rules.Len())

	walkOptions := []walker.Option{
		walker.WithLogger(log),
		walker.WithExcludeNames(cfg.Exclude),
		walker.WithHiddenDirs(true),
		walker.WithPatterns(patterns),
		walker.WithIgnore(rules),
		walker.WithBinaryDetection(true),
		walker.WithOutputPath(cfg.Output),
	}
	return rules, walkOptions, nil
}

// ConfigureTree builds the matcher and walker options of the tree tool. The
// nearest .gitignore above the directory decides what is hidden, together
// with the implicit .git rule.
func ConfigureTree(cfg *config.TreeConfig, log utils.Logger) (*ignore.GitMatcher, []walker.Option, error) {
	if log == nil {
		log = utils.NoopLogger{}
	}

	matcher, err := ignore.NewGitMatcher(cfg.Directory, ignore.WithLogger(log))
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing ignore rules: %w", err)
	}
	if matcher.Source != "" {
		log.Debug("Using ignore rules from %s", matcher.Source)
	} else {
		log.Debug("No %s found above %s", ignore.FileName, cfg.Directory)
	}

	walkOptions := []walker.Option{
		walker.WithLogger(log),
		walker.WithIgnore(matcher),
		walker.WithDirectories(true),
		walker.WithDisplayOrder(true),
	}
	return matcher, walkOptions, nil
}

// pruned reports directory names the walk never enters, so nested discovery
// does not load rules from them either.
func pruned(names []string) func(string) bool {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return func(name string) bool {
		if strings.HasPrefix(name, ".") {
			return true
		}
		_, ok := set[name]
		return ok
	}
}
