package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The file names match what the tool has always read and written when run
// without arguments.
const (
	// DefaultInputPath is the HTML document scanned when no input is given.
	DefaultInputPath = "index.html"

	// DefaultOutputPath is the report file written when no output is given.
	// It is overwritten on every run.
	DefaultOutputPath = "index_resources.txt"

	// StdoutPath writes the report to standard output instead of a file.
	StdoutPath = "-"

	// AppName is the application name used for XDG directory paths.
	AppName = "resparse"
)

// Format selects how the report is written.
type Format string

const (
	// FormatText is the labeled plain text report ("CSS:" followed by entries).
	FormatText Format = "text"
	// FormatJSON writes the buckets as a JSON object.
	FormatJSON Format = "json"
	// FormatMarkdown writes a Markdown document with a summary table.
	FormatMarkdown Format = "markdown"
)

// ParseFormat converts a format name to a Format.
// An empty name selects FormatText.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	default:
		return "", ErrUnknownFormat
	}
}

// Config holds all options of a resparse run.
// It is built once from the config file and CLI flags and passed down
// explicitly; nothing reads configuration from package state.
type Config struct {
	// InputPath is the HTML document to scan.
	InputPath string

	// OutputPath is the report destination. StdoutPath writes to stdout.
	OutputPath string

	// ConfigFilePath is the configuration file given with --config.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// Verbose enables debug logging, including every tag that is matched.
	Verbose bool

	// JSONLog writes log records as JSON instead of text.
	JSONLog bool

	// JSONReport selects the JSON report. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects the Markdown report. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// Tokenize scans the whole document with an HTML tokenizer instead of
	// looking at the first tag of each line.
	Tokenize bool

	// Progress shows a progress bar on stderr while scanning.
	Progress bool
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
	}
}

// Format returns the report format selected by the report flags.
func (c *Config) Format() Format {
	switch {
	case c.JSONReport:
		return FormatJSON
	case c.MarkdownReport:
		return FormatMarkdown
	default:
		return FormatText
	}
}

// SetFormat sets the report flags from a Format.
func (c *Config) SetFormat(f Format) {
	c.JSONReport = f == FormatJSON
	c.MarkdownReport = f == FormatMarkdown
}

// WritesToStdout reports whether the report goes to standard output.
func (c *Config) WritesToStdout() bool {
	return c.OutputPath == StdoutPath
}

// XDGConfigDir returns the XDG config directory for resparse.
// On Linux: ~/.config/resparse
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInput
	}

	if c.OutputPath == "" {
		return ErrNoOutput
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// Opening the output truncates it, which would destroy the input.
	if !c.WritesToStdout() && samePath(c.InputPath, c.OutputPath) {
		return ErrSamePath
	}

	return nil
}

// samePath reports whether a and b name the same file. Paths are compared
// in absolute form; when both exist, links and other aliases are resolved
// by comparing the files themselves.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}

	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}
