// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Files []string `json:"files,omitempty"`           // Input CSV files to ingest
	Vocab string   `json:"vocab,omitempty"`           // Path to a YAML vocabulary override

	// Outputs
	OutputDir string `json:"output_dir,omitempty"` // Directory for standardized output and duplicate report

	// Behavior
	NoDedupe bool `json:"no_dedupe,omitempty"`              // Skip deduplication, keep all records
	Verbose  bool `json:"verbose,omitempty"`                // Print detailed progress information
	Jobs     int  `json:"jobs,omitempty" validate:"gte=0"`  // Max files processed concurrently (0 = serial)
}

// LoadConfig loads configuration from a JSON file and checks it against
// the embedded JSON Schema before decoding.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := validateConfigJSON(data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required
// fields are not checked here; CLI flag validation covers those after
// merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	for _, file := range c.Files {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", file)
		}
	}
	if c.Vocab != "" {
		if _, err := os.Stat(c.Vocab); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocab)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(result.Files) == 0 {
		result.Files = defaults.Files
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Vocab == "" {
		result.Vocab = defaults.Vocab
	}
	if result.Jobs == 0 {
		result.Jobs = defaults.Jobs
	}
	if !result.NoDedupe {
		result.NoDedupe = defaults.NoDedupe
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
