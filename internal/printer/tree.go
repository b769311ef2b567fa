package printer

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/bethropolis/codebase-dump/internal/walker"
	"github.com/fatih/color"
)

const (
	branch     = "├── "
	lastBranch = "└── "
	pipe       = "│   "
	blank      = "    "
	denied     = "[ACCESS DENIED]"
)

// TreePrinter renders walker entries, produced in display order with
// directories, as an indented listing with connector glyphs.
type TreePrinter struct {
	output  io.Writer
	dirText *color.Color
}

// NewTree creates a TreePrinter. Directory names are colored when useColors is set.
func NewTree(w io.Writer, useColors bool) *TreePrinter {
	dirText := color.New(color.FgBlue, color.Bold)
	if useColors {
		dirText.EnableColor()
	} else {
		dirText.DisableColor()
	}
	return &TreePrinter{output: w, dirText: dirText}
}

// Print writes the header line "<name>/ (<ruleRoot>)" followed by one line per entry.
func (t *TreePrinter) Print(rootName, ruleRoot string, entries []walker.FileEntry) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/ (%s)\n", rootName, ruleRoot)

	last := lastSiblings(entries)
	var ancestors []bool // ancestors[d] is true when the open entry at depth d was the last sibling
	for i, e := range entries {
		ancestors = append(ancestors[:e.Depth], last[i])
		b.WriteString(indent(ancestors[:e.Depth]))
		if last[i] {
			b.WriteString(lastBranch)
		} else {
			b.WriteString(branch)
		}

		name := path.Base(e.RelativePath)
		if e.IsDir {
			b.WriteString(t.dirText.Sprint(name + "/"))
		} else {
			b.WriteString(name)
		}
		b.WriteByte('\n')

		if e.IsDir && e.Unreadable {
			b.WriteString(indent(ancestors))
			b.WriteString(lastBranch + denied + "\n")
		}
	}

	if _, err := io.WriteString(t.output, b.String()); err != nil {
		return fmt.Errorf("printer: writing tree: %w", err)
	}
	return nil
}

func indent(ancestors []bool) string {
	var b strings.Builder
	for _, isLast := range ancestors {
		if isLast {
			b.WriteString(blank)
		} else {
			b.WriteString(pipe)
		}
	}
	return b.String()
}

// lastSiblings marks entries with no later sibling under the same parent.
// Scanning backwards, a sibling seen at depth d stays valid until an entry
// at a shallower depth closes the parent.
func lastSiblings(entries []walker.FileEntry) []bool {
	last := make([]bool, len(entries))
	var seen []bool
	for i := len(entries) - 1; i >= 0; i-- {
		d := entries[i].Depth
		for len(seen) <= d {
			seen = append(seen, false)
		}
		last[i] = !seen[d]
		seen[d] = true
		seen = seen[:d+1]
	}
	return last
}
