// Package summary handles display of scan results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/codebase-dump/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// labels names each skip bucket in the run summary.
var labels = map[walker.SkippedReason]string{
	walker.ReasonExcludedName:   "Standard Exclude Dir/Path",
	walker.ReasonExcludePattern: "Exclude Pattern",
	walker.ReasonIgnoredRule:    ".gitignore",
	walker.ReasonBinary:         "Binary",
	walker.ReasonUnreadable:     "Read Error",
	walker.ReasonOutputFile:     "Output File",
}

// DisplayResults writes the run summary: files dumped, total skipped and
// every skip bucket, including empty ones.
func DisplayResults(output io.Writer, result *walker.Result, fileCount int64, duration time.Duration) {
	fmt.Fprintf(output, "\nScan complete in %v.\n", duration.Round(time.Millisecond))
	fmt.Fprintf(output, " - Files dumped: %d\n", fileCount)
	fmt.Fprintf(output, " - Total items skipped: %d\n", result.TotalSkipped())
	for _, reason := range walker.Reasons {
		fmt.Fprintf(output, "   - Skipped (%s): %d\n", labels[reason], result.Counts[reason])
	}
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(
	logger Logger,
	skippedItems []walker.SkippedItem,
	output io.Writer,
	quiet bool,
) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		infoLog("No items were skipped.")
		infoLog("--- End Skipped Items ---")
		return
	}

	// Sort a copy so the result keeps walk order
	items := append([]walker.SkippedItem(nil), skippedItems...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %-50s [%s]\n", typeStr, item.Path, item.Reason)
	}
	infoLog("--- End Skipped Items ---")
}
