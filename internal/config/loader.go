package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".pcbrepair"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .pcbrepair configuration file.
// Every field is optional; CLI flags override file values.
type File struct {
	// OutputDir is the default output directory for extracted files.
	OutputDir string `yaml:"outputDir,omitempty"`

	// Markdown selects Markdown report output by default.
	Markdown bool `yaml:"markdown,omitempty"`

	// JSON selects JSON report output by default.
	JSON bool `yaml:"json,omitempty"`

	// BatchSize overrides the concurrent decode count for directory
	// scans. If zero, DefaultBatchSize is used.
	BatchSize int `yaml:"batchSize,omitempty"`

	// DBDir is the board index directory. An empty value disables
	// persistence unless --db-dir is given.
	DBDir string `yaml:"dbDir,omitempty"`
}

// Apply copies file values onto a Config, skipping zero values so CLI
// flags keep precedence.
func (f *File) Apply(c *Config) {
	if f.OutputDir != "" && (c.OutputDir == "" || c.OutputDir == ".") {
		c.OutputDir = f.OutputDir
	}
	if f.Markdown && !c.JSONReport {
		c.MarkdownReport = true
	}
	if f.JSON && !c.MarkdownReport {
		c.JSONReport = true
	}
	if f.BatchSize > 0 && c.BatchSize == DefaultBatchSize {
		c.BatchSize = f.BatchSize
	}
	if f.DBDir != "" && c.DBDir == "" {
		c.DBDir = f.DBDir
		c.SaveToDB = true
	}
}

// LoadConfigFile loads settings from a YAML file. If the file does not
// exist, it returns ErrConfigNotFound. Callers should handle this error
// based on whether the path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .pcbrepair in the current directory
// 3. Look for .pcbrepair in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
