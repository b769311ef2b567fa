package summary

import (
	"bytes"
	"testing"
	"time"

	"github.com/bethropolis/codebase-dump/internal/utils"
	"github.com/bethropolis/codebase-dump/internal/walker"
	"github.com/stretchr/testify/assert"
)

func TestDisplayResults_ReportsEveryBucket(t *testing.T) {
	result := &walker.Result{Counts: map[walker.SkippedReason]int{
		walker.ReasonBinary:      2,
		walker.ReasonIgnoredRule: 1,
	}}

	var buf bytes.Buffer
	DisplayResults(&buf, result, 5, 1234*time.Microsecond)

	want := "\nScan complete in 1ms.\n" +
		" - Files dumped: 5\n" +
		" - Total items skipped: 3\n" +
		"   - Skipped (Standard Exclude Dir/Path): 0\n" +
		"   - Skipped (Exclude Pattern): 0\n" +
		"   - Skipped (.gitignore): 1\n" +
		"   - Skipped (Binary): 2\n" +
		"   - Skipped (Read Error): 0\n" +
		"   - Skipped (Output File): 0\n"
	assert.Equal(t, want, buf.String())
}

func TestDisplaySkippedItems_SortedByPath(t *testing.T) {
	items := []walker.SkippedItem{
		{Path: "z.log", Reason: walker.ReasonIgnoredRule},
		{Path: "build", Reason: walker.ReasonExcludePattern, IsDir: true},
	}
	log := &utils.RecordingLogger{}

	var buf bytes.Buffer
	DisplaySkippedItems(log, items, &buf, false)

	assert.Contains(t, buf.String(), "Skipped DIR : build")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("build")), bytes.Index(buf.Bytes(), []byte("z.log")))
	assert.Equal(t, "z.log", items[0].Path, "input order is left untouched")
	assert.Equal(t, []string{"INFO: --- Skipped Items (2) ---", "INFO: --- End Skipped Items ---"}, log.Lines)
}

func TestDisplaySkippedItems_QuietAndEmpty(t *testing.T) {
	log := &utils.RecordingLogger{}
	var buf bytes.Buffer
	DisplaySkippedItems(log, nil, &buf, true)

	assert.Empty(t, log.Lines)
	assert.Empty(t, buf.String())
}
