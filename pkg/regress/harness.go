package regress

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jvdberg/fileregress/pkg/compare"
	"github.com/jvdberg/fileregress/pkg/models"
	"github.com/jvdberg/fileregress/pkg/output"
	"github.com/jvdberg/fileregress/pkg/storage"
)

// Options configures a directory regression run executed under go test.
type Options struct {
	// BaseDir is the reference folder
	BaseDir string

	// TestDir is the candidate folder checked against the base
	TestDir string

	// Exclude holds glob patterns filtered out of both inventories
	Exclude []string

	// Comparator overrides the comparison method (default: md5)
	Comparator compare.Comparator
}

// RunT compares two folders and registers one subtest per discovered file,
// so standard go test output shows per-file pass/fail. A missing root
// folder fails the calling test immediately.
func RunT(t *testing.T, opts Options) {
	t.Helper()

	base, err := storage.NewLocal(opts.BaseDir)
	if err != nil {
		t.Fatalf("base folder: %v", err)
	}
	defer base.Close()

	test, err := storage.NewLocal(opts.TestDir)
	if err != nil {
		t.Fatalf("test folder: %v", err)
	}
	defer test.Close()

	comparator := opts.Comparator
	if comparator == nil {
		comparator = compare.NewMD5Comparator(compare.DefaultBufferSize)
	}

	operation := &models.Operation{
		ID:              uuid.New().String(),
		BasePath:        opts.BaseDir,
		TestPath:        opts.TestDir,
		Method:          comparator.Name(),
		ExcludePatterns: opts.Exclude,
		BufferSize:      compare.DefaultBufferSize,
		CreatedAt:       time.Now(),
	}
	if err := operation.Validate(); err != nil {
		t.Fatalf("invalid options: %v", err)
	}

	engine := NewEngine(base, test, comparator, output.NewNullFormatter(), zerolog.Nop(), operation)

	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}

	for _, c := range Cases(report) {
		t.Run(c.Name, func(t *testing.T) {
			if c.Failed() {
				t.Error(c.Message)
			}
		})
	}
}
