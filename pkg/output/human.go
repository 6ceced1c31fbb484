package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/jvdberg/fileregress/pkg/models"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// HumanFormatter formats run output in human-readable form. Failing files
// are printed as they are found; identical files are only printed in
// verbose mode.
type HumanFormatter struct {
	writer  io.Writer
	verbose bool
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter(writer io.Writer, verbose bool) *HumanFormatter {
	if writer == nil {
		writer = io.Discard
	}
	return &HumanFormatter{writer: writer, verbose: verbose}
}

// Start announces the run
func (f *HumanFormatter) Start(totalFiles int) error {
	fmt.Fprintf(f.writer, "Comparing %d files...\n", totalFiles)
	return nil
}

// Progress reports one file's result
func (f *HumanFormatter) Progress(update ProgressUpdate) error {
	if update.Outcome.Failed() {
		fmt.Fprintf(f.writer, "[%d/%d] %s %s: %s\n",
			update.Current, update.Total, failMark, update.FilePath, update.Reason)
	} else if f.verbose {
		fmt.Fprintf(f.writer, "[%d/%d] %s %s\n",
			update.Current, update.Total, okMark, update.FilePath)
	}
	return nil
}

// Complete displays the run summary
func (f *HumanFormatter) Complete(report *models.RegressionReport) error {
	w := f.writer

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Comparison completed in %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Base folder:    %d files\n", report.Stats.BaseFiles)
	fmt.Fprintf(w, "  Test folder:    %d files\n", report.Stats.TestFiles)
	fmt.Fprintf(w, "  Unique paths:   %d\n", report.Stats.PathsScanned)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Unchanged:      %d\n", report.Stats.Unchanged)
	fmt.Fprintf(w, "  Modified:       %d\n", report.Stats.Modified)
	fmt.Fprintf(w, "  Missing:        %d\n", report.Stats.Missing)
	fmt.Fprintf(w, "  Extra:          %d\n", report.Stats.Extra)
	fmt.Fprintf(w, "  Unreadable:     %d\n", report.Stats.Unreadable)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Data compared:  %s\n", formatBytes(report.Stats.BytesCompared))

	printGroup(w, "Files missing from test folder", report, models.OutcomeMissing)
	printGroup(w, "Files missing from base folder", report, models.OutcomeExtra)
	printGroup(w, "Files with different content", report, models.OutcomeModified)
	printGroup(w, "Unreadable files", report, models.OutcomeUnreadable)

	fmt.Fprintf(w, "\n")
	if report.Status == models.StatusClean {
		fmt.Fprintf(w, "%s All files are identical across both folders\n", okMark)
	} else {
		fmt.Fprintf(w, "%s Found %d issues in total\n", failMark, len(report.Failures()))
	}

	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// printGroup lists the paths with the given outcome, if any
func printGroup(w io.Writer, label string, report *models.RegressionReport, outcome models.Outcome) {
	var paths []string
	for _, res := range report.Results {
		if res.Outcome == outcome {
			paths = append(paths, res.RelativePath)
		}
	}
	if len(paths) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s (%d):\n", label, len(paths))
	for _, p := range paths {
		fmt.Fprintf(w, "  - %s\n", p)
	}
}

// formatBytes formats bytes in human-readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
