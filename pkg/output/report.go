package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jvdberg/fileregress/pkg/models"
)

// WriteReport writes the differences report to a file.
// Format can be "human" or "json". No file is created when the run is clean.
func WriteReport(report *models.RegressionReport, path string, format string) error {
	if len(report.Failures()) == 0 {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	switch format {
	case "json":
		return writeReportJSON(report, file)
	default: // "human"
		return writeReportHuman(report, file)
	}
}

// writeReportHuman writes differences grouped by outcome
func writeReportHuman(report *models.RegressionReport, w io.Writer) error {
	fmt.Fprintf(w, "Regression Report\n")
	fmt.Fprintf(w, "=================\n\n")
	fmt.Fprintf(w, "Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "Run ID: %s\n", report.RunID)
	fmt.Fprintf(w, "Base folder: %s\n", report.BasePath)
	fmt.Fprintf(w, "Test folder: %s\n", report.TestPath)
	fmt.Fprintf(w, "Method: %s\n", report.Method)
	if len(report.ExcludePatterns) > 0 {
		fmt.Fprintf(w, "Excluded: %s\n", strings.Join(report.ExcludePatterns, ", "))
	}
	fmt.Fprintf(w, "\n")

	failures := report.Failures()
	fmt.Fprintf(w, "Total Issues: %d\n\n", len(failures))

	byOutcome := make(map[models.Outcome][]models.FileResult)
	for _, res := range failures {
		byOutcome[res.Outcome] = append(byOutcome[res.Outcome], res)
	}

	outcomeOrder := []models.Outcome{
		models.OutcomeUnreadable,
		models.OutcomeMissing,
		models.OutcomeExtra,
		models.OutcomeModified,
	}

	outcomeLabels := map[models.Outcome]string{
		models.OutcomeUnreadable: "Unreadable Files",
		models.OutcomeMissing:    "Missing from Test Folder",
		models.OutcomeExtra:      "Missing from Base Folder",
		models.OutcomeModified:   "Content Differences",
	}

	for _, outcome := range outcomeOrder {
		results := byOutcome[outcome]
		if len(results) == 0 {
			continue
		}

		label := fmt.Sprintf("%s (%d files)", outcomeLabels[outcome], len(results))
		fmt.Fprintf(w, "%s\n", label)
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(label)))

		for _, res := range results {
			fmt.Fprintf(w, "  %s\n", res.RelativePath)
			if res.Reason != "" {
				fmt.Fprintf(w, "    Details: %s\n", res.Reason)
			}
			if res.BaseRecord != nil {
				fmt.Fprintf(w, "    Base: %s\n", formatBytes(res.BaseRecord.Size))
			}
			if res.TestRecord != nil {
				fmt.Fprintf(w, "    Test: %s\n", formatBytes(res.TestRecord.Size))
			}
			fmt.Fprintf(w, "\n")
		}

		fmt.Fprintf(w, "\n")
	}

	return nil
}

// writeReportJSON writes the failing results in JSON format
func writeReportJSON(report *models.RegressionReport, w io.Writer) error {
	doc := struct {
		Generated  string              `json:"generated"`
		RunID      string              `json:"run_id"`
		BasePath   string              `json:"base_path"`
		TestPath   string              `json:"test_path"`
		Method     string              `json:"method"`
		TotalCount int                 `json:"total_count"`
		Issues     []models.FileResult `json:"issues"`
	}{
		Generated:  time.Now().Format(time.RFC3339),
		RunID:      report.RunID,
		BasePath:   report.BasePath,
		TestPath:   report.TestPath,
		Method:     report.Method,
		TotalCount: len(report.Failures()),
		Issues:     report.Failures(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
