package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultBatchSize is the number of files decoded concurrently when
	// scanning a directory. Decoding is CPU-bound, so a small pool is
	// enough to keep cores busy without thrashing the page cache.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "pcbrepair"
)

// Config holds all options for a pcbrepair run. It is populated from
// CLI flags and an optional config file, then passed through the
// application by value injection rather than global state.
type Config struct {
	// Inputs is the list of repair files or directories to process.
	// Must contain at least one entry.
	Inputs []string

	// OutputDir is where extracted footprint libraries and payload
	// dumps are written. Defaults to the current directory.
	OutputDir string

	// JSONReport enables JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output with tables and
	// quantity charts. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report. When set, the
	// report is written to this file instead of stdout. Directories are
	// created automatically if they don't exist.
	ReportFile string

	// BatchSize is the number of concurrent decodes when processing
	// multiple files.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// SaveToDB indicates whether decoded boards are saved to the board
	// index. Automatically set to true when DBDir is configured.
	SaveToDB bool

	// DBDir is the directory for the SQLite board index. When empty,
	// results are not persisted.
	// Defaults to XDG data directory (~/.local/share/pcbrepair on Linux).
	DBDir string

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .pcbrepair in the current directory and
	// then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BatchSize: DefaultBatchSize,
		OutputDir: ".",
	}
}

// XDGDataDir returns the XDG data directory for pcbrepair.
// On Linux: ~/.local/share/pcbrepair
// On macOS: ~/Library/Application Support/pcbrepair
// On Windows: %LOCALAPPDATA%\pcbrepair
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for pcbrepair.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid. It returns the first
// error found; fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
