package output

import (
	"github.com/jvdberg/fileregress/pkg/models"
)

// ProgressUpdate represents one file's result as the run progresses.
type ProgressUpdate struct {
	FilePath string
	Outcome  models.Outcome
	Reason   string
	Current  int
	Total    int
}

// Formatter defines the interface for run output formatting.
// Implementations include human-readable, JSON and progress-bar formatters.
type Formatter interface {
	// Start initializes the formatter for a new run
	Start(totalFiles int) error

	// Progress reports one file's result
	Progress(update ProgressUpdate) error

	// Complete finalizes output and displays the summary
	Complete(report *models.RegressionReport) error

	// Name returns the formatter name
	Name() string
}

// NullFormatter discards all output. Used when the engine runs embedded,
// for example under the go test harness.
type NullFormatter struct{}

// NewNullFormatter creates a formatter that discards all output
func NewNullFormatter() *NullFormatter {
	return &NullFormatter{}
}

// Start does nothing
func (f *NullFormatter) Start(totalFiles int) error { return nil }

// Progress does nothing
func (f *NullFormatter) Progress(update ProgressUpdate) error { return nil }

// Complete does nothing
func (f *NullFormatter) Complete(report *models.RegressionReport) error { return nil }

// Name returns the formatter name
func (f *NullFormatter) Name() string { return "null" }
