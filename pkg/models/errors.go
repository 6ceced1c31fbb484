package models

import (
	"fmt"
)

// PathNotFoundError indicates a configured root folder does not exist or is
// not a directory. This is fatal for the run.
type PathNotFoundError struct {
	Path string
	Err  error
}

func (e *PathNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("path not found: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("path not found: %s", e.Path)
}

func (e *PathNotFoundError) Unwrap() error {
	return e.Err
}

// UnreadableFileError indicates one file could not be read during
// comparison. It is reported as that file's failure; the run continues.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("unreadable file: %s: %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Unwrap() error {
	return e.Err
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
