// Package walker handles directory traversal and file processing
package walker

// WalkFunc receives every accepted file with its content. It is not called
// for directories. Returning an error aborts the walk.
type WalkFunc func(entry FileEntry, content []byte) error

// IgnoreChecker decides whether an absolute path is covered by ignore rules.
type IgnoreChecker interface {
	ShouldIgnore(path string, isDir bool) bool
}

// PatternMatcher matches root-relative, slash-separated paths against exclude
// patterns and reports the pattern that matched.
type PatternMatcher interface {
	MatchFile(rel string) (string, bool)
	MatchDir(rel string) (string, bool)
}

// ruleExplainer is implemented by checkers that can name the matching rule.
type ruleExplainer interface {
	Match(path string, isDir bool) (scope, pattern string, ok bool)
}

// SkippedReason clarifies why a file/directory was not processed.
type SkippedReason string

const (
	ReasonExcludedName   SkippedReason = "Skipped (Standard Exclude Dir/Path)"
	ReasonExcludePattern SkippedReason = "Skipped (Exclude Pattern)"
	ReasonIgnoredRule    SkippedReason = "Skipped (.gitignore)"
	ReasonBinary         SkippedReason = "Skipped (Binary)"
	ReasonUnreadable     SkippedReason = "Skipped (Read Error)"
	ReasonOutputFile     SkippedReason = "Skipped (Output File)"
)

// Reasons lists every skip reason in summary order.
var Reasons = []SkippedReason{
	ReasonExcludedName,
	ReasonExcludePattern,
	ReasonIgnoredRule,
	ReasonBinary,
	ReasonUnreadable,
	ReasonOutputFile,
}

// FileEntry is one accepted file or directory.
type FileEntry struct {
	Path         string `json:"path"`          // absolute
	RelativePath string `json:"relative_path"` // relative to the walk root, '/'-separated
	IsDir        bool   `json:"is_dir"`
	Language     string `json:"language,omitempty"` // files only
	Depth        int    `json:"depth"`              // 0 for direct children of the root
	Unreadable   bool   `json:"unreadable,omitempty"`
}

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker records skipped items and counts them per reason.
// The walk is single-threaded, so no locking is needed.
type SkippedTracker struct {
	items  []SkippedItem
	counts map[SkippedReason]int
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items:  make([]SkippedItem, 0, capacity),
		counts: make(map[SkippedReason]int, len(Reasons)),
	}
}

// Track adds a skipped item and increments exactly one reason bucket
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
	st.counts[reason]++
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}

// Result is the outcome of a walk.
type Result struct {
	Entries []FileEntry
	Skipped []SkippedItem
	Counts  map[SkippedReason]int
}

// Files returns the accepted file entries, without directories.
func (r *Result) Files() []FileEntry {
	var files []FileEntry
	for _, e := range r.Entries {
		if !e.IsDir {
			files = append(files, e)
		}
	}
	return files
}

// TotalSkipped sums all reason buckets.
func (r *Result) TotalSkipped() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}
