package compare

import (
	"context"
	"fmt"

	"github.com/jvdberg/fileregress/pkg/storage"
)

// AutoComparator picks a strategy per file: byte-for-byte comparison for
// files at or below the threshold, SHA-256 digests above it. Small files
// get the exact first-difference offset, large files avoid holding two
// full reads in lockstep.
type AutoComparator struct {
	threshold int64
	binary    *BinaryComparator
	digest    *DigestComparator
}

// NewAutoComparator creates a threshold-based comparator. A threshold of
// zero or less falls back to DefaultBinaryThreshold.
func NewAutoComparator(threshold int64, bufferSize int) *AutoComparator {
	if threshold <= 0 {
		threshold = DefaultBinaryThreshold
	}
	return &AutoComparator{
		threshold: threshold,
		binary:    NewBinaryComparator(bufferSize),
		digest:    NewSHA256Comparator(bufferSize),
	}
}

// Compare compares two files, choosing the strategy from the base file size
func (c *AutoComparator) Compare(ctx context.Context, base, test storage.Backend, basePath, testPath string) (*Comparison, error) {
	baseInfo, err := base.Stat(ctx, basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat base file: %w", err)
	}

	testInfo, err := test.Stat(ctx, testPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat test file: %w", err)
	}

	if baseInfo.Size != testInfo.Size {
		return &Comparison{
			BasePath: basePath,
			TestPath: testPath,
			Result:   Different,
			Reason:   fmt.Sprintf("size mismatch: base=%d, test=%d", baseInfo.Size, testInfo.Size),
		}, nil
	}

	if baseInfo.Size <= c.threshold {
		return c.binary.Compare(ctx, base, test, basePath, testPath)
	}
	return c.digest.Compare(ctx, base, test, basePath, testPath)
}

// Name returns the comparator name
func (c *AutoComparator) Name() string {
	return "auto"
}
