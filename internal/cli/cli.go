// Package cli defines the cobra commands of both tools.
package cli

import (
	"github.com/bethropolis/codebase-dump/internal/app"
	"github.com/bethropolis/codebase-dump/internal/config"
	"github.com/spf13/cobra"
)

// NewDumpCommand returns the root command of codebase-dump
func NewDumpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codebase-dump",
		Short: "Dump a codebase into a single Markdown file",
		Long: `codebase-dump writes every text file under a source directory into one
Markdown document, one fenced section per file. Directories named by --exclude,
hidden directories, paths matching --exclude-patterns, .gitignore rules and
binary files are skipped.`,
		Example: `  codebase-dump -s ./project -o project.md
  codebase-dump -s . -o dump.md --exclude-patterns '**/testdata/*' --force`,
		Args:          cobra.NoArgs,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDump(config.NewViper(config.DumpEnvPrefix), cmd.Flags())
			if err != nil {
				return err
			}
			return app.New(cfg, cmd.OutOrStdout()).Run()
		},
	}
	config.AddDumpFlags(cmd.Flags())
	return cmd
}

// NewTreeCommand returns the root command of gittree
func NewTreeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gittree [directory]",
		Short: "List directory contents like tree, respecting .gitignore",
		Long: `gittree prints a directory tree, directories first. Entries matched by the
nearest .gitignore at or above the directory are hidden, as is .git.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadTree(config.NewViper(config.TreeEnvPrefix), cmd.Flags(), args)
			if err != nil {
				return err
			}
			return app.NewTree(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()).Run()
		},
	}
	config.AddTreeFlags(cmd.Flags())
	return cmd
}
