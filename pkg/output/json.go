package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/jvdberg/fileregress/pkg/models"
)

// JSONFormatter emits the full report as a single JSON document when the
// run completes. Per-file progress is not streamed.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(writer io.Writer) *JSONFormatter {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONFormatter{writer: writer}
}

// Start does nothing; JSON output is emitted at completion
func (f *JSONFormatter) Start(totalFiles int) error {
	return nil
}

// Progress does nothing; JSON output is emitted at completion
func (f *JSONFormatter) Progress(update ProgressUpdate) error {
	return nil
}

// Complete encodes the report as indented JSON
func (f *JSONFormatter) Complete(report *models.RegressionReport) error {
	doc := struct {
		Generated string                   `json:"generated"`
		Report    *models.RegressionReport `json:"report"`
	}{
		Generated: time.Now().Format(time.RFC3339),
		Report:    report,
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
