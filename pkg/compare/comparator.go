package compare

import (
	"context"

	"github.com/jvdberg/fileregress/pkg/storage"
)

// Result represents the outcome of comparing two files
type Result string

const (
	// Same indicates files are identical
	Same Result = "same"
	// Different indicates files differ
	Different Result = "different"
	// Error indicates comparison failed
	Error Result = "error"
)

// Comparison holds the result of comparing two files. Reason is a short
// human-readable explanation used as the failure message when files differ.
type Comparison struct {
	BasePath string
	TestPath string
	Result   Result
	Reason   string
}

// Comparator defines the interface for file comparison algorithms
type Comparator interface {
	// Compare compares one file present in both backends and returns the result
	Compare(ctx context.Context, base, test storage.Backend, basePath, testPath string) (*Comparison, error)

	// Name returns the name of the comparison method
	Name() string
}

const (
	// DefaultBufferSize is the read buffer size used when none is configured
	DefaultBufferSize = 64 * 1024

	// DefaultBinaryThreshold is the file size up to which the auto
	// comparator prefers byte-for-byte comparison over digests (1MB)
	DefaultBinaryThreshold = 1 * 1024 * 1024
)
