package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/bethropolis/codebase-dump/internal/config"
	"github.com/bethropolis/codebase-dump/internal/logger"
	"github.com/bethropolis/codebase-dump/internal/printer"
	"github.com/bethropolis/codebase-dump/internal/setup"
	"github.com/bethropolis/codebase-dump/internal/walker"
	"github.com/fatih/color"
)

// TreeApp prints a directory tree that hides ignored entries
type TreeApp struct {
	cfg    *config.TreeConfig
	log    *logger.Logger
	Output io.Writer // the rendered tree
}

// NewTree creates a TreeApp printing to out and logging to errOut, so the
// tree stays clean when piped.
func NewTree(cfg *config.TreeConfig, out, errOut io.Writer) *TreeApp {
	color.NoColor = !cfg.UseColors

	log := logger.New(errOut, cfg.Verbose, cfg.UseColors)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	}

	return &TreeApp{cfg: cfg, log: log, Output: out}
}

// Run walks the directory and prints it.
func (a *TreeApp) Run() error {
	matcher, walkOptions, err := setup.ConfigureTree(a.cfg, a.log)
	if err != nil {
		return err
	}

	result, err := walker.Walk(a.cfg.Directory, nil, walkOptions...)
	if err != nil {
		return fmt.Errorf("error listing %s: %w", a.cfg.Directory, err)
	}
	a.log.Debug("Listed %d entries, %d hidden", len(result.Entries), result.TotalSkipped())

	tree := printer.NewTree(a.Output, a.cfg.UseColors)
	return tree.Print(filepath.Base(a.cfg.Directory), matcher.Root, result.Entries)
}
