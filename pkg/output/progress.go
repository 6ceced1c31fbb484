package output

import (
	"io"

	"github.com/cheggaaa/pb/v3"

	"github.com/jvdberg/fileregress/pkg/models"
)

// ProgressFormatter renders a progress bar over the file count while the
// run executes, then prints the human-readable summary. Failure lines are
// buffered so they don't interleave with the bar.
type ProgressFormatter struct {
	writer   io.Writer
	bar      *pb.ProgressBar
	failures []ProgressUpdate
	summary  *HumanFormatter
}

// NewProgressFormatter creates a new progress bar formatter
func NewProgressFormatter(writer io.Writer) *ProgressFormatter {
	if writer == nil {
		writer = io.Discard
	}
	return &ProgressFormatter{
		writer:  writer,
		summary: NewHumanFormatter(writer, false),
	}
}

// Start initializes the progress bar
func (f *ProgressFormatter) Start(totalFiles int) error {
	f.bar = pb.New(totalFiles)
	f.bar.SetWriter(f.writer)
	f.bar.Start()
	return nil
}

// Progress advances the bar and buffers failing files
func (f *ProgressFormatter) Progress(update ProgressUpdate) error {
	if f.bar != nil {
		f.bar.Increment()
	}
	if update.Outcome.Failed() {
		f.failures = append(f.failures, update)
	}
	return nil
}

// Complete stops the bar, flushes buffered failures and prints the summary
func (f *ProgressFormatter) Complete(report *models.RegressionReport) error {
	if f.bar != nil {
		f.bar.Finish()
	}

	for _, update := range f.failures {
		if err := f.summary.Progress(update); err != nil {
			return err
		}
	}

	return f.summary.Complete(report)
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
