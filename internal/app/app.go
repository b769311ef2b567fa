// Package app runs the dump and tree tools from a resolved configuration.
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/codebase-dump/internal/config"
	"github.com/bethropolis/codebase-dump/internal/logger"
	"github.com/bethropolis/codebase-dump/internal/printer"
	"github.com/bethropolis/codebase-dump/internal/setup"
	"github.com/bethropolis/codebase-dump/internal/summary"
	"github.com/bethropolis/codebase-dump/internal/walker"
	"github.com/fatih/color"
)

// App encapsulates the Markdown dump tool
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer // status lines and the run summary
}

// New creates a new App instance writing status to out
func New(cfg *config.Config, out io.Writer) *App {
	color.NoColor = !cfg.UseColors

	log := logger.New(out, cfg.Verbose, cfg.UseColors)

	// Apply log level if specified (overrides verbose/quiet flags)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: out,
	}
}

// Run dumps every accepted file under the source directory into the output
// file and prints the run summary. The output file is left partial if the
// walk fails midway.
func (a *App) Run() error {
	startTime := time.Now()

	a.log.Info("Source Directory: %s", a.cfg.Source)
	a.log.Info("Output File: %s", a.cfg.Output)

	infoLog := func(format string, args ...interface{}) {
		a.log.Info(format, args...)
	}
	_, walkOptions, err := setup.ConfigureWalker(a.cfg, a.log, infoLog)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(a.cfg.Output), 0o755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	file, err := os.Create(a.cfg.Output)
	if err != nil {
		return fmt.Errorf("error writing to output file %s: %w", a.cfg.Output, err)
	}
	defer file.Close()

	buffered := bufio.NewWriter(file)
	p := printer.New().WithOutput(buffered)
	if err := p.PrintHeader(filepath.Base(a.cfg.Source)); err != nil {
		return fmt.Errorf("error writing to output file %s: %w", a.cfg.Output, err)
	}

	result, err := walker.Walk(a.cfg.Source, p.PrintFile, walkOptions...)
	if flushErr := buffered.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("error writing to output file %s: %w", a.cfg.Output, flushErr)
	}
	if err != nil {
		return fmt.Errorf("critical error during directory walk: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing output file %s: %w", a.cfg.Output, err)
	}

	summary.DisplayResults(a.Output, result, p.GetCount(), time.Since(startTime))
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, result.Skipped, a.Output, a.cfg.Quiet)
	}
	fmt.Fprintf(a.Output, "Output written to: %s\n", a.cfg.Output)
	return nil
}
