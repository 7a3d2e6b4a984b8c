// Package config handles vecx configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Config holds all vecx settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format    string `yaml:"format"`    // text or yaml
	Precision int    `yaml:"precision"` // digits after the decimal point
}

// BatchConfig controls evaluation of query files.
type BatchConfig struct {
	Workers     int  `yaml:"workers"`       // files evaluated concurrently
	StopOnError bool `yaml:"stop_on_error"` // exit non-zero if any query failed
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	FileFormat string `yaml:"file_format"` // console or json
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    FormatText,
			Precision: 4,
		},
		Batch: BatchConfig{
			Workers:     4,
			StopOnError: false,
		},
		Logging: LoggingConfig{
			Level:      "warn",
			LogFile:    "",
			FileFormat: "console",
		},
	}
}

// Validate checks the settings that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalid, c.Output.Format)
	}
	if c.Output.Precision < 0 {
		return fmt.Errorf("%w: negative precision %d", ErrInvalid, c.Output.Precision)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Batch.Workers)
	}
	switch c.Logging.FileFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log file format %q", ErrInvalid, c.Logging.FileFormat)
	}
	return nil
}
