package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrInvalidServerAddr is returned when the web server listen address
	// is empty or lacks a port. The http package needs "host:port" or
	// ":port" to bind.
	ErrInvalidServerAddr = errors.New("invalid server address: must be host:port or :port")

	// ErrInvalidGeneratorLength is returned when the generator length is
	// set but too short to hold one character from each class.
	ErrInvalidGeneratorLength = errors.New("invalid generator length: must be at least 4")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent evaluations,
	// effectively stopping the audit.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrMissingHistoryDir is returned when history saving is enabled
	// without a database directory to save into.
	ErrMissingHistoryDir = errors.New("history enabled but no database directory configured")
)
