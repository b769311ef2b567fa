// Package walker handles directory traversal and file processing
package walker

import (
	"os"
	"strings"

	"github.com/bethropolis/codebase-dump/internal/language"
)

// dirDecision applies the pruning checks to a subdirectory in order, stopping
// at the first match. An empty reason keeps the directory.
func (w *walk) dirDecision(name, relativePath, path string) SkippedReason {
	log := w.options.Logger

	_, excluded := w.options.ExcludeNames[name]
	if excluded || (w.options.SkipHidden && strings.HasPrefix(name, ".")) {
		log.Debug("Skipping standard excluded directory: %s", relativePath)
		return ReasonExcludedName
	}

	if w.options.Patterns != nil {
		if pattern, ok := w.options.Patterns.MatchDir(relativePath); ok {
			log.Debug("Skipping excluded pattern directory: %s (due to pattern: '%s')", relativePath, pattern)
			return ReasonExcludePattern
		}
	}

	if w.ignored(path, relativePath, true) {
		return ReasonIgnoredRule
	}
	return ""
}

// fileDecision applies the file checks in order: self-reference, binary
// content, literal names, exclude patterns, ignore rules.
func (w *walk) fileDecision(relativePath, path string) SkippedReason {
	log := w.options.Logger

	if w.options.OutputPath != "" && (path == w.options.OutputPath || relativePath == w.outputRel) {
		log.Debug("Skipping output file itself: %s", relativePath)
		return ReasonOutputFile
	}

	if w.options.SkipBinary {
		isBinary, err := w.options.IsBinary(path)
		if err != nil {
			log.Warn("Could not read file %s: %v", path, err)
			return ReasonUnreadable
		}
		if isBinary {
			log.Debug("Skipping binary file: %s", relativePath)
			return ReasonBinary
		}
	}

	if len(w.options.ExcludeNames) > 0 {
		for _, segment := range strings.Split(relativePath, "/") {
			if _, ok := w.options.ExcludeNames[segment]; ok {
				log.Debug("Skipping excluded file (in standard excluded path): %s", relativePath)
				return ReasonExcludedName
			}
		}
	}

	if w.options.Patterns != nil {
		if pattern, ok := w.options.Patterns.MatchFile(relativePath); ok {
			log.Debug("Skipping excluded pattern file: '%s' (due to pattern: '%s')", relativePath, pattern)
			return ReasonExcludePattern
		}
	}

	if w.ignored(path, relativePath, false) {
		return ReasonIgnoredRule
	}
	return ""
}

func (w *walk) ignored(path, relativePath string, isDir bool) bool {
	if w.options.Ignore == nil {
		return false
	}
	kind := "file"
	if isDir {
		kind = "directory"
	}
	if explainer, ok := w.options.Ignore.(ruleExplainer); ok {
		if _, pattern, hit := explainer.Match(path, isDir); hit {
			w.options.Logger.Debug("Skipping gitignored %s: %s (pattern '%s')", kind, relativePath, pattern)
			return true
		}
		return false
	}
	if w.options.Ignore.ShouldIgnore(path, isDir) {
		w.options.Logger.Debug("Skipping gitignored %s: %s", kind, relativePath)
		return true
	}
	return false
}

// processFile reads an accepted file and hands it to walkFn. A read failure
// becomes an unreadable skip; a walkFn error is returned to abort the walk.
func (w *walk) processFile(entry FileEntry) error {
	entry.Language = language.Hint(entry.Path)

	if w.walkFn == nil {
		w.result.Entries = append(w.result.Entries, entry)
		return nil
	}

	w.options.Logger.Debug("Processing file: %s", entry.RelativePath)
	content, err := os.ReadFile(entry.Path)
	if err != nil {
		w.options.Logger.Warn("Could not read file %s: %v", entry.Path, err)
		w.tracker.Track(entry.RelativePath, ReasonUnreadable, false)
		return nil
	}

	if err := w.walkFn(entry, content); err != nil {
		return err
	}
	w.result.Entries = append(w.result.Entries, entry)
	return nil
}
