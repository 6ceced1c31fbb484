package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jvdberg/fileregress/internal/platform"
	"github.com/jvdberg/fileregress/pkg/compare"
	"github.com/jvdberg/fileregress/pkg/config"
	"github.com/jvdberg/fileregress/pkg/models"
)

// validateCompareFlags validates the compare command flags
func validateCompareFlags() error {
	for _, folder := range []struct {
		name string
		path string
	}{
		{"base folder", compareFlags.BaseFolder},
		{"test folder", compareFlags.TestFolder},
	} {
		info, err := os.Stat(platform.NormalizePath(folder.path))
		if os.IsNotExist(err) {
			return &models.PathNotFoundError{Path: folder.path, Err: err}
		}
		if err != nil {
			return fmt.Errorf("failed to access %s: %w", folder.name, err)
		}
		if !info.IsDir() {
			return &models.PathNotFoundError{Path: folder.path, Err: fmt.Errorf("not a directory")}
		}
	}

	baseAbs, err := filepath.Abs(compareFlags.BaseFolder)
	if err != nil {
		return fmt.Errorf("failed to resolve base folder: %w", err)
	}

	testAbs, err := filepath.Abs(compareFlags.TestFolder)
	if err != nil {
		return fmt.Errorf("failed to resolve test folder: %w", err)
	}

	if baseAbs == testAbs {
		return fmt.Errorf("base and test folders cannot be the same: %s", baseAbs)
	}

	// Empty means the configured default is used
	if compareFlags.Comparison != "" && !compare.ValidMethod(compareFlags.Comparison) {
		return fmt.Errorf("invalid comparison method: %s (valid: md5, sha256, binary, auto)", compareFlags.Comparison)
	}

	validOutputs := map[string]bool{"human": true, "json": true}
	if !validOutputs[compareFlags.Output] {
		return fmt.Errorf("invalid output format: %s (valid: human, json)", compareFlags.Output)
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cfg *config.Config) {
	if compareFlags.Comparison != "" {
		cfg.Compare.Method = compareFlags.Comparison
	}

	if len(compareFlags.Exclude) > 0 {
		cfg.Exclude = compareFlags.Exclude
	}

	if compareFlags.Output != "" {
		cfg.Output.Format = compareFlags.Output
	}

	if globalFlags.LogLevel != "" {
		cfg.Logging.Level = globalFlags.LogLevel
	}

	if globalFlags.LogFormat != "" {
		cfg.Logging.Format = globalFlags.LogFormat
	}

	// Quiet suppresses the progress bar; verbose keeps it
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}
}

// createOperation creates a comparison operation from configuration
func createOperation(cfg *config.Config) (*models.Operation, error) {
	operation := &models.Operation{
		ID:              uuid.New().String(),
		BasePath:        compareFlags.BaseFolder,
		TestPath:        compareFlags.TestFolder,
		Method:          cfg.Compare.Method,
		ExcludePatterns: cfg.Exclude,
		BufferSize:      cfg.Compare.BufferSize,
		BinaryThreshold: cfg.Compare.BinaryThreshold,
		CreatedAt:       time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}
