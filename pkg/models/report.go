package models

import (
	"time"
)

// RegressionReport represents the results of one comparison run.
type RegressionReport struct {
	// Run details
	RunID           string   `json:"run_id"`
	BasePath        string   `json:"base_path"`
	TestPath        string   `json:"test_path"`
	Method          string   `json:"method"`
	ExcludePatterns []string `json:"exclude_patterns,omitempty"`

	// Timing
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration_ns"`

	// Statistics
	Stats Statistics `json:"stats"`

	// Per-file results, sorted by relative path
	Results []FileResult `json:"results"`

	// Overall status
	Status RunStatus `json:"status"`
}

// Failures returns the results that count as regressions.
func (r *RegressionReport) Failures() []FileResult {
	var failed []FileResult
	for _, res := range r.Results {
		if res.Outcome.Failed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Statistics holds comparison run metrics.
type Statistics struct {
	// Files discovered per side, after exclusion filtering
	BaseFiles int `json:"base_files"`
	TestFiles int `json:"test_files"`

	// Unique relative paths across both folders
	PathsScanned int `json:"paths_scanned"`

	// Outcome counts
	Unchanged  int `json:"unchanged"`
	Modified   int `json:"modified"`
	Missing    int `json:"missing"`
	Extra      int `json:"extra"`
	Unreadable int `json:"unreadable"`

	// Content read for common-file comparison
	BytesCompared int64 `json:"bytes_compared"`
}

// RunStatus represents the overall result of a run.
type RunStatus string

const (
	// StatusClean indicates all common files match and no file is missing or extra
	StatusClean RunStatus = "clean"
	// StatusRegressed indicates at least one file is missing, extra, modified or unreadable
	StatusRegressed RunStatus = "regressed"
	// StatusFailed indicates the run itself failed before completing
	StatusFailed RunStatus = "failed"
)

// ExitCode returns the process exit code for the run status.
func (s RunStatus) ExitCode() int {
	switch s {
	case StatusClean:
		return 0
	case StatusRegressed:
		return 1
	case StatusFailed:
		return 2
	default:
		return 2
	}
}
