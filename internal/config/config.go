// Package config resolves command-line flags, environment variables and an
// optional YAML file into the settings of both tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/codebase-dump/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is reported by --version on both tools
const Version = "1.0.0"

// Environment variable prefixes, e.g. CODEDUMP_EXCLUDE_PATTERNS.
const (
	DumpEnvPrefix = "CODEDUMP"
	TreeEnvPrefix = "GITTREE"
)

// Flag and configuration keys
const (
	KeySource          = "source"
	KeyOutput          = "output"
	KeyExclude         = "exclude"
	KeyExcludePatterns = "exclude-patterns"
	KeyForce           = "force"
	KeyVerbose         = "verbose"
	KeyQuiet           = "quiet"
	KeyLogLevel        = "log-level"
	KeyNoColor         = "no-color"
	KeyShowSkipped     = "show-skipped"
	KeyNestedIgnores   = "nested-ignores"
	KeyConfig          = "config"
)

// DefaultExclude lists directory names pruned unless --exclude is given.
var DefaultExclude = []string{".git", ".vscode", ".idea", "bin", "obj", "node_modules"}

// DefaultExcludePatterns lists path globs pruned unless --exclude-patterns is given.
var DefaultExcludePatterns = []string{"**/Examples/*", "**/Library-References/*", "**/Archive/*"}

// Configuration errors. All of them abort before any traversal.
var (
	ErrMissingSource      = errors.New("--source is required")
	ErrMissingOutput      = errors.New("--output is required")
	ErrSourceNotDirectory = errors.New("source directory not found or is not a directory")
	ErrOutputExists       = errors.New("output file already exists, use --force to overwrite")
)

// Config holds all settings of the Markdown dump tool
type Config struct {
	Source          string
	Output          string
	Exclude         []string
	ExcludePatterns []string
	Force           bool
	NestedIgnores   bool

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool
}

// TreeConfig holds all settings of the tree tool
type TreeConfig struct {
	Directory string
	Verbose   bool
	LogLevel  string
	NoColor   bool
	UseColors bool
}

// NewViper returns a reader that resolves keys from bound flags, then
// PREFIX_* environment variables, then a config file.
func NewViper(envPrefix string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// AddDumpFlags registers the dump tool's flags.
func AddDumpFlags(fs *pflag.FlagSet) {
	fs.StringP(KeySource, "s", "", "Source directory to scan (required)")
	fs.StringP(KeyOutput, "o", "", "Output Markdown file path (required)")
	fs.StringSliceP(KeyExclude, "e", DefaultExclude, "Directory names to exclude (exact match)")
	fs.StringSlice(KeyExcludePatterns, DefaultExcludePatterns, "Glob patterns for paths to exclude, relative to source")
	fs.BoolP(KeyForce, "f", false, "Overwrite output file if it exists")
	fs.Bool(KeyNestedIgnores, false, "Also apply .gitignore files found below the source directory")
	fs.Bool(KeyShowSkipped, false, "List every skipped path and its reason at the end")
	addCommonFlags(fs)
	fs.BoolP(KeyQuiet, "q", false, "Suppress INFO messages (only show WARN, ERROR)")
}

// AddTreeFlags registers the tree tool's flags.
func AddTreeFlags(fs *pflag.FlagSet) {
	addCommonFlags(fs)
}

func addCommonFlags(fs *pflag.FlagSet) {
	fs.BoolP(KeyVerbose, "v", false, "Enable verbose output")
	fs.String(KeyLogLevel, "", "Set the logging level (debug, info, warn, error, none)")
	fs.Bool(KeyNoColor, false, "Disable color output")
	fs.String(KeyConfig, "", "Read settings from this YAML file")
}

// bind attaches fs to v and loads the config file named by --config, if any.
func bind(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("config: binding flags: %w", err)
	}
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read configuration from %s: %w", path, err)
		}
	}
	return nil
}

// LoadDump resolves and validates the dump tool configuration.
func LoadDump(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	if err := bind(v, fs); err != nil {
		return nil, err
	}

	c := &Config{
		Source:          v.GetString(KeySource),
		Output:          v.GetString(KeyOutput),
		Exclude:         v.GetStringSlice(KeyExclude),
		ExcludePatterns: v.GetStringSlice(KeyExcludePatterns),
		Force:           v.GetBool(KeyForce),
		NestedIgnores:   v.GetBool(KeyNestedIgnores),
		Verbose:         v.GetBool(KeyVerbose),
		Quiet:           v.GetBool(KeyQuiet),
		LogLevel:        v.GetString(KeyLogLevel),
		NoColor:         v.GetBool(KeyNoColor),
		ShowSkipped:     v.GetBool(KeyShowSkipped),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.UseColors = colorsEnabled(os.Stdout, c.NoColor)
	return c, nil
}

// Validate checks required settings and resolves Source and Output to absolute paths.
func (c *Config) Validate() error {
	if c.Source == "" {
		return ErrMissingSource
	}
	if c.Output == "" {
		return ErrMissingOutput
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	source, err := filepath.Abs(c.Source)
	if err != nil {
		return fmt.Errorf("config: invalid source path '%s': %w", c.Source, err)
	}
	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: '%s'", ErrSourceNotDirectory, source)
	}
	c.Source = source

	output, err := filepath.Abs(c.Output)
	if err != nil {
		return fmt.Errorf("config: invalid output path '%s': %w", c.Output, err)
	}
	if _, err := os.Stat(output); err == nil && !c.Force {
		return fmt.Errorf("%w: '%s'", ErrOutputExists, output)
	}
	c.Output = output
	return nil
}

// LoadTree resolves the tree tool configuration. args holds the optional
// directory argument, defaulting to the current directory.
func LoadTree(v *viper.Viper, fs *pflag.FlagSet, args []string) (*TreeConfig, error) {
	if err := bind(v, fs); err != nil {
		return nil, err
	}

	dir := "."
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("config: invalid directory '%s': %w", dir, err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("'%s' is not a valid directory: %w", abs, ErrSourceNotDirectory)
	}

	c := &TreeConfig{
		Directory: abs,
		Verbose:   v.GetBool(KeyVerbose),
		LogLevel:  v.GetString(KeyLogLevel),
		NoColor:   v.GetBool(KeyNoColor),
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c.UseColors = colorsEnabled(os.Stdout, c.NoColor)
	return c, nil
}

// colorsEnabled reports whether f is a terminal and colors were not disabled.
func colorsEnabled(f *os.File, noColor bool) bool {
	return !noColor && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
