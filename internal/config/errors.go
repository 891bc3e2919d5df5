package config

import "errors"

// Configuration errors.
// Sentinel values so callers can use errors.Is.
var (
	// ErrNoInput is returned when the input path is empty.
	ErrNoInput = errors.New("no input document specified")

	// ErrNoOutput is returned when the output path is empty.
	ErrNoOutput = errors.New("no output file specified")

	// ErrSamePath is returned when the report would overwrite the input document.
	ErrSamePath = errors.New("output file must differ from the input document")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownFormat is returned for a format name other than text, json or markdown.
	ErrUnknownFormat = errors.New("unknown report format: must be text, json or markdown")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
