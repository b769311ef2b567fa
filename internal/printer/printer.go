// Package printer handles output formatting and display
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/codebase-dump/internal/walker"
)

// Printer writes the Markdown dump: a heading for the source root, then one
// section per accepted file with its raw content in a fenced block.
type Printer struct {
	output io.Writer
	count  int64
	err    error
}

// New creates a new Printer writing to stdout
func New() *Printer {
	return &Printer{output: os.Stdout}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// PrintHeader writes the dump heading naming the source directory.
func (p *Printer) PrintHeader(sourceName string) error {
	p.printf("# Code Dump: %s\n\n", sourceName)
	return p.err
}

// PrintFile writes one file section. The content is copied byte for byte.
func (p *Printer) PrintFile(entry walker.FileEntry, content []byte) error {
	p.printf("## %s\n\n```%s\n", entry.RelativePath, entry.Language)
	if p.err == nil {
		_, p.err = p.output.Write(content)
	}
	p.printf("\n```\n\n")
	if p.err != nil {
		return fmt.Errorf("printer: writing %s: %w", entry.RelativePath, p.err)
	}
	p.count++
	return nil
}

// GetCount returns the number of files printed
func (p *Printer) GetCount() int64 {
	return p.count
}

// printf keeps the first write error and drops later writes.
func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.output, format, args...)
}
