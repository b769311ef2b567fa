// Package walker handles directory traversal and file processing
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// walk carries the state of one traversal.
type walk struct {
	root      string
	options   WalkOptions
	walkFn    WalkFunc
	tracker   *SkippedTracker
	result    *Result
	outputRel string // output file relative to the resolved root, "" when outside it
}

// child is a directory entry resolved for filtering.
type child struct {
	name    string
	isDir   bool
	descend bool // false for symlinked directories, which are listed but not entered
}

// Walk traverses the directory tree starting from rootDir, depth-first and
// top-down. Subdirectories are pruned before descent; files are filtered
// before walkFn sees them. Only an unreadable root or a walkFn error aborts.
func Walk(rootDir string, walkFn WalkFunc, opts ...Option) (*Result, error) {
	startTime := time.Now()

	// Apply options
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: failed to get absolute path for '%s': %w", rootDir, err)
	}

	entries, err := os.ReadDir(absRootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: cannot read root directory '%s': %w", absRootDir, err)
	}

	w := &walk{
		root:    absRootDir,
		options: options,
		walkFn:  walkFn,
		tracker: NewSkippedTracker(100),
		result:  &Result{},
	}
	w.outputRel = outputRelative(absRootDir, options.OutputPath)

	options.Logger.Debug("walker.Walk started. Root: %s", absRootDir)
	walkErr := w.dir(absRootDir, "", 0, entries)

	w.result.Skipped = w.tracker.Items()
	w.result.Counts = w.tracker.counts
	options.Logger.Debug("Walker: Total walk and processing time: %s", time.Since(startTime))
	return w.result, walkErr
}

// dir processes one listed directory: prune subdirectories, filter files,
// then recurse into what was kept.
func (w *walk) dir(absDir, relDir string, depth int, entries []fs.DirEntry) error {
	var dirs, files []child
	for _, e := range entries {
		c := w.resolve(absDir, e)
		if c.isDir {
			dirs = append(dirs, c)
		} else {
			files = append(files, c)
		}
	}

	if w.options.DisplayOrder {
		byName(dirs)
		byName(files)
	}

	kept := dirs[:0]
	for _, d := range dirs {
		relativePath := path.Join(relDir, d.name)
		if reason := w.dirDecision(d.name, relativePath, filepath.Join(absDir, d.name)); reason != "" {
			w.tracker.Track(relativePath, reason, true)
			continue
		}
		kept = append(kept, d)
	}

	if w.options.DisplayOrder {
		if err := w.subdirs(absDir, relDir, depth, kept); err != nil {
			return err
		}
		return w.files(absDir, relDir, depth, files)
	}
	if err := w.files(absDir, relDir, depth, files); err != nil {
		return err
	}
	return w.subdirs(absDir, relDir, depth, kept)
}

func (w *walk) files(absDir, relDir string, depth int, files []child) error {
	for _, f := range files {
		relativePath := path.Join(relDir, f.name)
		absPath := filepath.Join(absDir, f.name)
		if reason := w.fileDecision(relativePath, absPath); reason != "" {
			w.tracker.Track(relativePath, reason, false)
			continue
		}
		if err := w.processFile(FileEntry{Path: absPath, RelativePath: relativePath, Depth: depth}); err != nil {
			return fmt.Errorf("walker: processing '%s': %w", relativePath, err)
		}
	}
	return nil
}

func (w *walk) subdirs(absDir, relDir string, depth int, dirs []child) error {
	for _, d := range dirs {
		relativePath := path.Join(relDir, d.name)
		absPath := filepath.Join(absDir, d.name)

		index := -1
		if w.options.IncludeDirs {
			w.result.Entries = append(w.result.Entries, FileEntry{
				Path:         absPath,
				RelativePath: relativePath,
				IsDir:        true,
				Depth:        depth,
			})
			index = len(w.result.Entries) - 1
		}
		if !d.descend {
			w.options.Logger.Debug("Walker: Not following symlinked directory %q", relativePath)
			continue
		}

		entries, err := os.ReadDir(absPath)
		if err != nil {
			w.options.Logger.Warn("Walker: cannot list directory %q: %v", relativePath, err)
			w.tracker.Track(relativePath, ReasonUnreadable, true)
			if index >= 0 {
				w.result.Entries[index].Unreadable = true
			}
			continue
		}

		w.options.Logger.Debug("Walker: Descending into directory %q", relativePath)
		if err := w.dir(absPath, relativePath, depth+1, entries); err != nil {
			return err
		}
	}
	return nil
}

// resolve classifies an entry, following symlinks only to learn whether
// they point at a directory.
func (w *walk) resolve(absDir string, e fs.DirEntry) child {
	c := child{name: e.Name(), isDir: e.IsDir(), descend: e.IsDir()}
	if e.Type()&fs.ModeSymlink != 0 {
		if info, err := os.Stat(filepath.Join(absDir, e.Name())); err == nil && info.IsDir() {
			c.isDir = true
		}
	}
	return c
}

// byName orders entries case-insensitively, falling back to byte order so
// names differing only in case stay stable.
func byName(entries []child) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := strings.ToLower(entries[i].name), strings.ToLower(entries[j].name)
		if a != b {
			return a < b
		}
		return entries[i].name < entries[j].name
	})
}

// outputRelative locates the output file below root with symlinks resolved on
// both sides, so a root reached through a link still recognizes it.
func outputRelative(root, output string) string {
	if output == "" {
		return ""
	}
	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(realRoot, realPath(output))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.ToSlash(rel)
}

// realPath resolves symlinks in p. A file that does not exist yet is resolved
// through its parent directory.
func realPath(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(p)); err == nil {
		return filepath.Join(dir, filepath.Base(p))
	}
	return p
}
