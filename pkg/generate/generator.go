// Package generate produces synthetic base/test folder pairs with
// controlled differences, for exercising the regression comparator.
package generate

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"os"
	"path"
	"strings"
	"time"

	"github.com/jvdberg/fileregress/pkg/storage"
)

const alphanum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Options configures test data generation.
type Options struct {
	// BaseDir and TestDir are created if they do not exist
	BaseDir string
	TestDir string

	// NumFiles is the number of files created in the base folder
	NumFiles int

	// MaxDepth is the maximum subfolder depth
	MaxDepth int

	// ModifyPercent is the chance (0-100) that a copied file is mutated
	ModifyPercent int

	// MissingPercent is the chance (0-100) that a base file is omitted
	// from the test folder
	MissingPercent int

	// MinSizeKB and MaxSizeKB bound the random file size (defaults 1-5)
	MinSizeKB int
	MaxSizeKB int

	// Seed makes generation deterministic; 0 seeds from the clock
	Seed int64
}

// Summary reports what was generated.
type Summary struct {
	FilesCreated int
	ExtraFiles   int
	Modified     int
	Omitted      int
}

// Generate creates a base folder of random text files and a test folder
// copy with a controlled amount of modified, omitted and extra files.
func Generate(ctx context.Context, opts Options) (*Summary, error) {
	if opts.NumFiles < 1 {
		return nil, fmt.Errorf("num files must be at least 1")
	}
	if opts.MinSizeKB < 1 {
		opts.MinSizeKB = 1
	}
	if opts.MaxSizeKB < opts.MinSizeKB {
		opts.MaxSizeKB = opts.MinSizeKB + 4
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if err := os.MkdirAll(opts.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base folder: %w", err)
	}
	if err := os.MkdirAll(opts.TestDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create test folder: %w", err)
	}

	base, err := storage.NewLocal(opts.BaseDir)
	if err != nil {
		return nil, err
	}
	defer base.Close()

	test, err := storage.NewLocal(opts.TestDir)
	if err != nil {
		return nil, err
	}
	defer test.Close()

	summary := &Summary{}

	for i := 0; i < opts.NumFiles; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		relPath := randomPath(rng, opts.MaxDepth, fmt.Sprintf("file_%d_%04d.txt", i, 1000+rng.Intn(9000)))
		content := randomContent(rng, opts.MinSizeKB, opts.MaxSizeKB)

		if err := base.Write(ctx, relPath, bytes.NewReader(content), int64(len(content))); err != nil {
			return nil, fmt.Errorf("failed to write base file: %w", err)
		}
		summary.FilesCreated++

		// Randomly omit this file from the test folder
		if rng.Intn(100) < opts.MissingPercent {
			summary.Omitted++
			continue
		}

		// Randomly mutate the copy
		if rng.Intn(100) < opts.ModifyPercent {
			content = mutate(rng, content)
			summary.Modified++
		}

		if err := test.Write(ctx, relPath, bytes.NewReader(content), int64(len(content))); err != nil {
			return nil, fmt.Errorf("failed to write test file: %w", err)
		}
	}

	// Add some files only present in the test folder
	extra := 1 + rng.Intn(maxInt(1, opts.NumFiles/5))
	for i := 0; i < extra; i++ {
		relPath := randomPath(rng, opts.MaxDepth, fmt.Sprintf("extra_file_%d_%04d.txt", i, 1000+rng.Intn(9000)))
		content := randomContent(rng, opts.MinSizeKB, opts.MaxSizeKB)

		if err := test.Write(ctx, relPath, bytes.NewReader(content), int64(len(content))); err != nil {
			return nil, fmt.Errorf("failed to write extra file: %w", err)
		}
		summary.ExtraFiles++
	}

	return summary, nil
}

// randomPath builds a relative path with a random subfolder chain
func randomPath(rng *rand.Rand, maxDepth int, name string) string {
	depth := 0
	if maxDepth > 0 {
		depth = rng.Intn(maxDepth + 1)
	}

	parts := make([]string, 0, depth+1)
	for i := 0; i < depth; i++ {
		parts = append(parts, string(alphanum[rng.Intn(26)]))
	}
	parts = append(parts, name)

	return path.Join(parts...)
}

// randomContent produces alphanumeric content of a random size
func randomContent(rng *rand.Rand, minKB, maxKB int) []byte {
	sizeKB := minKB
	if maxKB > minKB {
		sizeKB += rng.Intn(maxKB - minKB + 1)
	}

	var sb strings.Builder
	sb.Grow(sizeKB * 1024)
	for i := 0; i < sizeKB*1024; i++ {
		sb.WriteByte(alphanum[rng.Intn(len(alphanum))])
	}
	return []byte(sb.String())
}

// mutate replaces one character with a guaranteed-different one
func mutate(rng *rand.Rand, content []byte) []byte {
	mutated := make([]byte, len(content))
	copy(mutated, content)

	pos := rng.Intn(len(mutated))
	for {
		replacement := alphanum[rng.Intn(len(alphanum))]
		if replacement != mutated[pos] {
			mutated[pos] = replacement
			break
		}
	}
	return mutated
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
