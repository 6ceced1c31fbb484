package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jvdberg/fileregress/pkg/compare"
	"github.com/jvdberg/fileregress/pkg/generate"
	"github.com/jvdberg/fileregress/pkg/models"
	"github.com/jvdberg/fileregress/pkg/output"
	"github.com/jvdberg/fileregress/pkg/regress"
	"github.com/jvdberg/fileregress/pkg/storage"
)

// TestHelper provides utilities for integration tests
type TestHelper struct {
	t       *testing.T
	tempDir string
	baseDir string
	testDir string
}

// NewTestHelper creates a new integration test helper
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "fileregress-integration-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	return &TestHelper{
		t:       t,
		tempDir: tempDir,
		baseDir: filepath.Join(tempDir, "base"),
		testDir: filepath.Join(tempDir, "test"),
	}
}

// Generate populates the base/test folders with synthetic data
func (h *TestHelper) Generate(opts generate.Options) *generate.Summary {
	h.t.Helper()

	opts.BaseDir = h.baseDir
	opts.TestDir = h.testDir

	summary, err := generate.Generate(context.Background(), opts)
	if err != nil {
		h.t.Fatalf("Generate() error = %v", err)
	}
	return summary
}

// Run executes a full comparison over the generated folders
func (h *TestHelper) Run(method string, excludePatterns []string) *models.RegressionReport {
	h.t.Helper()

	base, err := storage.NewLocal(h.baseDir)
	if err != nil {
		h.t.Fatalf("failed to create base backend: %v", err)
	}
	h.t.Cleanup(func() { base.Close() })

	test, err := storage.NewLocal(h.testDir)
	if err != nil {
		h.t.Fatalf("failed to create test backend: %v", err)
	}
	h.t.Cleanup(func() { test.Close() })

	operation := &models.Operation{
		ID:              uuid.New().String(),
		BasePath:        h.baseDir,
		TestPath:        h.testDir,
		Method:          method,
		ExcludePatterns: excludePatterns,
		BufferSize:      compare.DefaultBufferSize,
		BinaryThreshold: compare.DefaultBinaryThreshold,
		CreatedAt:       time.Now(),
	}

	comparator, err := compare.New(method, compare.DefaultBinaryThreshold, compare.DefaultBufferSize)
	if err != nil {
		h.t.Fatalf("failed to create comparator: %v", err)
	}

	engine := regress.NewEngine(base, test, comparator, output.NewNullFormatter(), zerolog.Nop(), operation)

	report, err := engine.Run(context.Background())
	if err != nil {
		h.t.Fatalf("Run() error = %v", err)
	}
	return report
}

// TestGenerateAndCompare generates synthetic data and verifies the engine
// finds exactly the planted differences
func TestGenerateAndCompare(t *testing.T) {
	h := NewTestHelper(t)

	summary := h.Generate(generate.Options{
		NumFiles:       40,
		MaxDepth:       3,
		ModifyPercent:  20,
		MissingPercent: 10,
		Seed:           2024,
	})

	for _, method := range compare.Methods() {
		t.Run(method, func(t *testing.T) {
			report := h.Run(method, nil)

			if report.Stats.Modified != summary.Modified {
				t.Errorf("Modified = %d, generator planted %d", report.Stats.Modified, summary.Modified)
			}
			if report.Stats.Missing != summary.Omitted {
				t.Errorf("Missing = %d, generator planted %d", report.Stats.Missing, summary.Omitted)
			}
			if report.Stats.Extra != summary.ExtraFiles {
				t.Errorf("Extra = %d, generator planted %d", report.Stats.Extra, summary.ExtraFiles)
			}

			wantStatus := models.StatusClean
			if summary.Modified+summary.Omitted+summary.ExtraFiles > 0 {
				wantStatus = models.StatusRegressed
			}
			if report.Status != wantStatus {
				t.Errorf("Status = %s, want %s", report.Status, wantStatus)
			}
		})
	}
}

// TestOutcomePartition verifies every scanned path lands in exactly one
// outcome and the counts add up
func TestOutcomePartition(t *testing.T) {
	h := NewTestHelper(t)

	h.Generate(generate.Options{
		NumFiles:       25,
		MaxDepth:       2,
		ModifyPercent:  30,
		MissingPercent: 20,
		Seed:           7,
	})

	report := h.Run(compare.MethodMD5, nil)

	stats := report.Stats
	total := stats.Unchanged + stats.Modified + stats.Missing + stats.Extra + stats.Unreadable
	if total != stats.PathsScanned {
		t.Errorf("outcome counts sum to %d, want PathsScanned = %d", total, stats.PathsScanned)
	}
	if len(report.Results) != stats.PathsScanned {
		t.Errorf("len(Results) = %d, want %d", len(report.Results), stats.PathsScanned)
	}

	seen := make(map[string]bool)
	for _, res := range report.Results {
		if seen[res.RelativePath] {
			t.Errorf("path %q appears twice in results", res.RelativePath)
		}
		seen[res.RelativePath] = true
	}
}

// TestIdenticalFolders verifies a clean end-to-end run
func TestIdenticalFolders(t *testing.T) {
	h := NewTestHelper(t)

	h.Generate(generate.Options{
		NumFiles: 10,
		MaxDepth: 2,
		Seed:     3,
	})

	report := h.Run(compare.MethodSHA256, []string{"extra_file_*"})

	if report.Status != models.StatusClean {
		t.Errorf("Status = %s, want %s", report.Status, models.StatusClean)
	}
	if report.Status.ExitCode() != 0 {
		t.Errorf("ExitCode() = %d, want 0", report.Status.ExitCode())
	}
	if len(report.Failures()) != 0 {
		t.Errorf("Failures() = %d, want 0", len(report.Failures()))
	}
}

// TestExclusionsEndToEnd verifies exclusion patterns hide planted differences
func TestExclusionsEndToEnd(t *testing.T) {
	h := NewTestHelper(t)

	write := func(root, name, content string) {
		t.Helper()
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}

	write(h.baseDir, "out/result.txt", "same")
	write(h.baseDir, "out/run.log", "base log")
	write(h.baseDir, "cache/blob.bin", "base blob")
	write(h.testDir, "out/result.txt", "same")
	write(h.testDir, "out/run.log", "test log differs")

	report := h.Run(compare.MethodMD5, []string{"*.log", "cache/"})

	if report.Status != models.StatusClean {
		t.Errorf("Status = %s, want %s", report.Status, models.StatusClean)
	}
	if report.Stats.PathsScanned != 1 {
		t.Errorf("PathsScanned = %d, want 1", report.Stats.PathsScanned)
	}
}

// TestHarnessOverGeneratedData runs the go test harness over identical
// generated folders
func TestHarnessOverGeneratedData(t *testing.T) {
	h := NewTestHelper(t)

	h.Generate(generate.Options{
		NumFiles: 8,
		MaxDepth: 1,
		Seed:     11,
	})

	regress.RunT(t, regress.Options{
		BaseDir: h.baseDir,
		TestDir: h.testDir,
		Exclude: []string{"extra_file_*"},
	})
}
