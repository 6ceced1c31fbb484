package config

import (
	"github.com/jvdberg/fileregress/pkg/compare"
	"github.com/jvdberg/fileregress/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Compare   CompareConfig   `yaml:"compare"`
	Exclude   []string        `yaml:"exclude"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
	Generator GeneratorConfig `yaml:"generator"`
}

// CompareConfig holds comparison-related settings
type CompareConfig struct {
	Method          string `yaml:"method"`           // "md5", "sha256", "binary", "auto"
	BinaryThreshold int64  `yaml:"binary_threshold"` // max size for byte comparison in auto mode
	BufferSize      int    `yaml:"buffer_size"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress bar on a terminal
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "console" or "json"
}

// GeneratorConfig holds test-data generator defaults
type GeneratorConfig struct {
	NumFiles       int `yaml:"num_files"`
	MaxDepth       int `yaml:"max_depth"`
	ModifyPercent  int `yaml:"modify_percent"`
	MissingPercent int `yaml:"missing_percent"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Compare: CompareConfig{
			Method:          compare.MethodMD5,
			BinaryThreshold: compare.DefaultBinaryThreshold,
			BufferSize:      compare.DefaultBufferSize,
		},
		Exclude: []string{},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Generator: GeneratorConfig{
			NumFiles:       20,
			MaxDepth:       2,
			ModifyPercent:  20,
			MissingPercent: 10,
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !compare.ValidMethod(c.Compare.Method) {
		return &models.ValidationError{
			Field:   "compare.method",
			Message: "must be 'md5', 'sha256', 'binary' or 'auto'",
		}
	}

	if c.Compare.BinaryThreshold < 0 {
		return &models.ValidationError{
			Field:   "compare.binary_threshold",
			Message: "must not be negative",
		}
	}

	if c.Compare.BufferSize < 1024 {
		return &models.ValidationError{
			Field:   "compare.buffer_size",
			Message: "must be at least 1024 bytes",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"console": true, "json": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'console' or 'json'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	if c.Generator.NumFiles < 1 {
		return &models.ValidationError{
			Field:   "generator.num_files",
			Message: "must be at least 1",
		}
	}

	if c.Generator.ModifyPercent < 0 || c.Generator.ModifyPercent > 100 {
		return &models.ValidationError{
			Field:   "generator.modify_percent",
			Message: "must be between 0 and 100",
		}
	}

	if c.Generator.MissingPercent < 0 || c.Generator.MissingPercent > 100 {
		return &models.ValidationError{
			Field:   "generator.missing_percent",
			Message: "must be between 0 and 100",
		}
	}

	return nil
}
