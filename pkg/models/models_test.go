package models

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

// TestOutcomeFailed verifies the regression classification of each outcome
func TestOutcomeFailed(t *testing.T) {
	tests := []struct {
		outcome Outcome
		failed  bool
	}{
		{OutcomeUnchanged, false},
		{OutcomeModified, true},
		{OutcomeMissing, true},
		{OutcomeExtra, true},
		{OutcomeUnreadable, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			if got := tt.outcome.Failed(); got != tt.failed {
				t.Errorf("Failed() = %v, want %v", got, tt.failed)
			}
		})
	}
}

// TestRunStatusExitCode verifies exit codes per run status
func TestRunStatusExitCode(t *testing.T) {
	tests := []struct {
		status RunStatus
		code   int
	}{
		{StatusClean, 0},
		{StatusRegressed, 1},
		{StatusFailed, 2},
		{RunStatus("unknown"), 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.ExitCode(); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
		})
	}
}

// TestReportFailures verifies failure filtering
func TestReportFailures(t *testing.T) {
	report := &RegressionReport{
		Results: []FileResult{
			{RelativePath: "ok.txt", Outcome: OutcomeUnchanged},
			{RelativePath: "gone.txt", Outcome: OutcomeMissing},
			{RelativePath: "new.txt", Outcome: OutcomeExtra},
		},
	}

	failures := report.Failures()
	if len(failures) != 2 {
		t.Fatalf("len(Failures()) = %d, want 2", len(failures))
	}
	for _, res := range failures {
		if !res.Outcome.Failed() {
			t.Errorf("Failures() contains passing result %s", res.RelativePath)
		}
	}
}

// TestPathNotFoundError verifies error message and unwrapping
func TestPathNotFoundError(t *testing.T) {
	err := &PathNotFoundError{Path: "/missing", Err: os.ErrNotExist}

	if !strings.Contains(err.Error(), "/missing") {
		t.Errorf("Error() = %q, want it to name the path", err.Error())
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is(err, os.ErrNotExist) = false, want true")
	}

	bare := &PathNotFoundError{Path: "/missing"}
	if bare.Error() == "" {
		t.Error("Error() is empty for error without cause")
	}
}

// TestUnreadableFileError verifies error message and unwrapping
func TestUnreadableFileError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &UnreadableFileError{Path: "sub/locked.txt", Err: cause}

	if !strings.Contains(err.Error(), "sub/locked.txt") {
		t.Errorf("Error() = %q, want it to name the path", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

// TestOperationValidate verifies operation validation
func TestOperationValidate(t *testing.T) {
	valid := Operation{
		ID:         "run-1",
		BasePath:   "/base",
		TestPath:   "/test",
		Method:     "md5",
		BufferSize: 65536,
		CreatedAt:  time.Now(),
	}

	t.Run("Valid", func(t *testing.T) {
		op := valid
		if err := op.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("MissingBasePath", func(t *testing.T) {
		op := valid
		op.BasePath = ""
		if err := op.Validate(); err == nil {
			t.Error("Validate() error = nil, want validation error")
		}
	})

	t.Run("MissingTestPath", func(t *testing.T) {
		op := valid
		op.TestPath = ""
		if err := op.Validate(); err == nil {
			t.Error("Validate() error = nil, want validation error")
		}
	})

	t.Run("TinyBuffer", func(t *testing.T) {
		op := valid
		op.BufferSize = 16
		err := op.Validate()
		if err == nil {
			t.Fatal("Validate() error = nil, want validation error")
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("error type = %T, want *ValidationError", err)
		}
	})
}
