package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/nao1215/passcheck/internal/generator"
)

// Default configuration values.
const (
	// DefaultServerAddr is the listen address for the web interface.
	// Port 5000 keeps the bundled analysis form reachable at the address
	// its documentation and examples use.
	DefaultServerAddr = ":5000"

	// DefaultBatchSize of 10 concurrent evaluations is used by the audit
	// command when checking a password list. Evaluation is CPU-bound and
	// cheap, so this mostly bounds memory held by in-flight reports.
	DefaultBatchSize = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "passcheck"
)

// Config holds all configuration options for passcheck.
// This struct is populated from the config file and CLI flags and passed
// through the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ServerConfig, HistoryConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant
// benefit. The YAML file format is nested for readability; File.Apply maps
// it onto this struct.
type Config struct {
	// ServerAddr is the listen address for the web interface in
	// "host:port" or ":port" format.
	ServerAddr string

	// HistoryEnabled turns on saving analysis summaries to the local
	// SQLite database. Only masked summaries are stored; the database
	// never contains a submitted password.
	HistoryEnabled bool

	// HistoryDir is the directory for the SQLite history database.
	// Defaults to the XDG data directory (~/.local/share/passcheck on
	// Linux).
	HistoryDir string

	// GeneratorLength is the default length for generated passwords.
	GeneratorLength int

	// CommonPasswordFile is an optional newline-delimited file of extra
	// common passwords merged into the built-in list.
	CommonPasswordFile string

	// DictionaryFile is an optional newline-delimited file of extra
	// dictionary words merged into the built-in list.
	DictionaryFile string

	// BatchSize is the number of concurrent evaluations used by the
	// audit command.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for passcheck.yaml in the current
	// directory and then in the XDG config directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases. Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (listen address,
// generator length). This also serves as documentation of what the
// defaults are.
func NewConfig() *Config {
	return &Config{
		ServerAddr:      DefaultServerAddr,
		HistoryDir:      XDGDataDir(),
		GeneratorLength: generator.DefaultLength,
		BatchSize:       DefaultBatchSize,
	}
}

// XDGDataDir returns the XDG data directory for passcheck.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/passcheck
// On macOS: ~/Library/Application Support/passcheck
// On Windows: %LOCALAPPDATA%\passcheck
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for passcheck.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/passcheck
// On macOS: ~/Library/Application Support/passcheck
// On Windows: %APPDATA%\passcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any command runs.
//
// We chose to return the first error found rather than collecting all
// errors because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// The listen address must at least carry a port ("":5000", "host:port").
	if c.ServerAddr == "" || !strings.Contains(c.ServerAddr, ":") {
		return ErrInvalidServerAddr
	}

	// Zero means "use the default"; anything else below the generator
	// minimum cannot hold one character of each class.
	if c.GeneratorLength != 0 && c.GeneratorLength < generator.MinLength {
		return ErrInvalidGeneratorLength
	}

	// BatchSize must be positive; zero would mean no evaluations run.
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// History needs somewhere to put the database.
	if c.HistoryEnabled && c.HistoryDir == "" {
		return ErrMissingHistoryDir
	}

	return nil
}
