package compare

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jvdberg/fileregress/pkg/storage"
)

// TestHelper provides utilities for comparator tests
type TestHelper struct {
	t       *testing.T
	baseDir string
	testDir string
	base    *storage.Local
	test    *storage.Local
}

// NewTestHelper creates a new test helper with temporary folders
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	tempDir := t.TempDir()
	baseDir := filepath.Join(tempDir, "base")
	testDir := filepath.Join(tempDir, "test")

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(testDir, 0755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	base, err := storage.NewLocal(baseDir)
	if err != nil {
		t.Fatalf("failed to create base backend: %v", err)
	}

	test, err := storage.NewLocal(testDir)
	if err != nil {
		t.Fatalf("failed to create test backend: %v", err)
	}

	return &TestHelper{
		t:       t,
		baseDir: baseDir,
		testDir: testDir,
		base:    base,
		test:    test,
	}
}

// CreateBaseFile creates a file in the base folder
func (h *TestHelper) CreateBaseFile(name string, content []byte) {
	h.t.Helper()
	h.createFile(h.baseDir, name, content)
}

// CreateTestFile creates a file in the test folder
func (h *TestHelper) CreateTestFile(name string, content []byte) {
	h.t.Helper()
	h.createFile(h.testDir, name, content)
}

func (h *TestHelper) createFile(root, name string, content []byte) {
	h.t.Helper()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		h.t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		h.t.Fatalf("failed to create file: %v", err)
	}
}

// comparators returns every comparison method under test
func comparators() map[string]Comparator {
	return map[string]Comparator{
		"md5":    NewMD5Comparator(DefaultBufferSize),
		"sha256": NewSHA256Comparator(DefaultBufferSize),
		"binary": NewBinaryComparator(DefaultBufferSize),
		"auto":   NewAutoComparator(DefaultBinaryThreshold, DefaultBufferSize),
	}
}

// TestCompareIdentical verifies identical files compare as same
func TestCompareIdentical(t *testing.T) {
	for name, comparator := range comparators() {
		t.Run(name, func(t *testing.T) {
			h := NewTestHelper(t)
			h.CreateBaseFile("file.txt", []byte("identical content"))
			h.CreateTestFile("file.txt", []byte("identical content"))

			cmp, err := comparator.Compare(context.Background(), h.base, h.test, "file.txt", "file.txt")
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if cmp.Result != Same {
				t.Errorf("Result = %s, want %s (reason: %s)", cmp.Result, Same, cmp.Reason)
			}
		})
	}
}

// TestCompareDifferentContent verifies same-size content changes are detected
func TestCompareDifferentContent(t *testing.T) {
	for name, comparator := range comparators() {
		t.Run(name, func(t *testing.T) {
			h := NewTestHelper(t)
			h.CreateBaseFile("file.txt", []byte("content version A"))
			h.CreateTestFile("file.txt", []byte("content version B"))

			cmp, err := comparator.Compare(context.Background(), h.base, h.test, "file.txt", "file.txt")
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if cmp.Result != Different {
				t.Errorf("Result = %s, want %s", cmp.Result, Different)
			}
			if cmp.Reason == "" {
				t.Error("Reason is empty, want explanation")
			}
		})
	}
}

// TestCompareSizeMismatch verifies the size pre-check short-circuits
func TestCompareSizeMismatch(t *testing.T) {
	for name, comparator := range comparators() {
		t.Run(name, func(t *testing.T) {
			h := NewTestHelper(t)
			h.CreateBaseFile("file.txt", []byte("short"))
			h.CreateTestFile("file.txt", []byte("much longer content"))

			cmp, err := comparator.Compare(context.Background(), h.base, h.test, "file.txt", "file.txt")
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if cmp.Result != Different {
				t.Errorf("Result = %s, want %s", cmp.Result, Different)
			}
			if !strings.Contains(cmp.Reason, "size mismatch") {
				t.Errorf("Reason = %q, want size mismatch", cmp.Reason)
			}
		})
	}
}

// TestCompareReflexive verifies comparing a file against itself yields same
func TestCompareReflexive(t *testing.T) {
	for name, comparator := range comparators() {
		t.Run(name, func(t *testing.T) {
			h := NewTestHelper(t)
			h.CreateBaseFile("self.txt", []byte("reflexive check"))

			cmp, err := comparator.Compare(context.Background(), h.base, h.base, "self.txt", "self.txt")
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if cmp.Result != Same {
				t.Errorf("Result = %s, want %s", cmp.Result, Same)
			}
		})
	}
}

// TestCompareEmptyFiles verifies empty files compare as same
func TestCompareEmptyFiles(t *testing.T) {
	for name, comparator := range comparators() {
		t.Run(name, func(t *testing.T) {
			h := NewTestHelper(t)
			h.CreateBaseFile("empty.txt", nil)
			h.CreateTestFile("empty.txt", nil)

			cmp, err := comparator.Compare(context.Background(), h.base, h.test, "empty.txt", "empty.txt")
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if cmp.Result != Same {
				t.Errorf("Result = %s, want %s", cmp.Result, Same)
			}
		})
	}
}

// TestCompareMissingFile verifies a vanished file surfaces as an error
func TestCompareMissingFile(t *testing.T) {
	for name, comparator := range comparators() {
		t.Run(name, func(t *testing.T) {
			h := NewTestHelper(t)
			h.CreateBaseFile("file.txt", []byte("content"))

			_, err := comparator.Compare(context.Background(), h.base, h.test, "file.txt", "file.txt")
			if err == nil {
				t.Error("Compare() error = nil, want stat error for missing test file")
			}
		})
	}
}

// TestBinaryComparatorOffset verifies the first differing offset is reported
func TestBinaryComparatorOffset(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateBaseFile("file.bin", []byte("0123456789"))
	h.CreateTestFile("file.bin", []byte("0123456X89"))

	comparator := NewBinaryComparator(DefaultBufferSize)
	cmp, err := comparator.Compare(context.Background(), h.base, h.test, "file.bin", "file.bin")
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if cmp.Result != Different {
		t.Fatalf("Result = %s, want %s", cmp.Result, Different)
	}
	if !strings.Contains(cmp.Reason, "offset 7") {
		t.Errorf("Reason = %q, want first difference at offset 7", cmp.Reason)
	}
}

// TestNew verifies the method factory
func TestNew(t *testing.T) {
	for _, method := range Methods() {
		t.Run(method, func(t *testing.T) {
			comparator, err := New(method, DefaultBinaryThreshold, DefaultBufferSize)
			if err != nil {
				t.Fatalf("New(%s) error = %v", method, err)
			}
			if comparator.Name() != method {
				t.Errorf("Name() = %s, want %s", comparator.Name(), method)
			}
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		if _, err := New("crc32", DefaultBinaryThreshold, DefaultBufferSize); err == nil {
			t.Error("New(crc32) error = nil, want unsupported method error")
		}
	})
}
