package config

import "errors"

// Configuration validation errors. Returned by Config.Validate so
// callers can match them with errors.Is.
var (
	// ErrNoInput is returned when no repair file or input directory is
	// specified.
	ErrNoInput = errors.New("no input specified: provide a repair file or use --dir")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a
	// time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
