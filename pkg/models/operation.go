package models

import (
	"time"
)

// Operation represents one regression comparison run configuration.
type Operation struct {
	ID              string
	BasePath        string
	TestPath        string
	Method          string
	ExcludePatterns []string
	BufferSize      int
	BinaryThreshold int64
	CreatedAt       time.Time
}

// Validate checks if the operation configuration is valid
func (op *Operation) Validate() error {
	if op.BasePath == "" {
		return &ValidationError{Field: "BasePath", Message: "base folder is required"}
	}
	if op.TestPath == "" {
		return &ValidationError{Field: "TestPath", Message: "test folder is required"}
	}
	if op.BufferSize < 1024 {
		return &ValidationError{Field: "BufferSize", Message: "buffer size must be at least 1024 bytes"}
	}
	return nil
}
