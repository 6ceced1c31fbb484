package regress

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/jvdberg/fileregress/pkg/compare"
	"github.com/jvdberg/fileregress/pkg/inventory"
	"github.com/jvdberg/fileregress/pkg/models"
	"github.com/jvdberg/fileregress/pkg/output"
	"github.com/jvdberg/fileregress/pkg/storage"
)

// Engine runs one regression comparison: it inventories both folders,
// reconciles the path sets, compares every common file and produces a
// report. Single-threaded, one pass, no state between runs. A single
// file's read error is recorded as that file's failure; the run continues.
type Engine struct {
	base       storage.Backend
	test       storage.Backend
	comparator compare.Comparator
	formatter  output.Formatter
	logger     zerolog.Logger
	operation  *models.Operation
}

// NewEngine creates a new comparison engine
func NewEngine(
	base, test storage.Backend,
	comparator compare.Comparator,
	formatter output.Formatter,
	logger zerolog.Logger,
	operation *models.Operation,
) *Engine {
	if formatter == nil {
		formatter = output.NewNullFormatter()
	}
	return &Engine{
		base:       base,
		test:       test,
		comparator: comparator,
		formatter:  formatter,
		logger:     logger,
		operation:  operation,
	}
}

// Run executes the comparison and returns the report.
func (e *Engine) Run(ctx context.Context) (*models.RegressionReport, error) {
	startTime := time.Now()
	rules := inventory.Rules(e.operation.ExcludePatterns)

	baseInv, err := inventory.Build(ctx, e.base, rules)
	if err != nil {
		return nil, err
	}

	testInv, err := inventory.Build(ctx, e.test, rules)
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Int("base_files", baseInv.Len()).
		Int("test_files", testInv.Len()).
		Msg("inventories built")

	rec := Reconcile(baseInv, testInv)

	if err := e.formatter.Start(rec.Total()); err != nil {
		return nil, err
	}

	stats := models.Statistics{
		BaseFiles:    baseInv.Len(),
		TestFiles:    testInv.Len(),
		PathsScanned: rec.Total(),
	}

	results := make([]models.FileResult, 0, rec.Total())
	total := rec.Total()

	progress := func(result models.FileResult) error {
		return e.formatter.Progress(output.ProgressUpdate{
			FilePath: result.RelativePath,
			Outcome:  result.Outcome,
			Reason:   result.Reason,
			Current:  len(results),
			Total:    total,
		})
	}

	for _, path := range rec.Missing {
		baseRec, _ := baseInv.Record(path)
		results = append(results, models.FileResult{
			RelativePath: path,
			Outcome:      models.OutcomeMissing,
			Reason:       "file missing from test folder",
			BaseRecord:   &baseRec,
		})
		stats.Missing++
		if err := progress(results[len(results)-1]); err != nil {
			return nil, err
		}
	}

	for _, path := range rec.Extra {
		testRec, _ := testInv.Record(path)
		results = append(results, models.FileResult{
			RelativePath: path,
			Outcome:      models.OutcomeExtra,
			Reason:       "file missing from base folder",
			TestRecord:   &testRec,
		})
		stats.Extra++
		if err := progress(results[len(results)-1]); err != nil {
			return nil, err
		}
	}

	for _, path := range rec.Common {
		baseRec, _ := baseInv.Record(path)
		testRec, _ := testInv.Record(path)

		result := models.FileResult{
			RelativePath: path,
			BaseRecord:   &baseRec,
			TestRecord:   &testRec,
		}

		cmp, err := e.comparator.Compare(ctx, e.base, e.test, path, path)
		switch {
		case err != nil:
			// Run-level cancellation aborts; a per-file read error does not
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			ferr := &models.UnreadableFileError{Path: path, Err: err}
			e.logger.Warn().Str("path", path).Err(err).Msg("file could not be compared")
			result.Outcome = models.OutcomeUnreadable
			result.Reason = ferr.Error()
			stats.Unreadable++

		case cmp.Result == compare.Same:
			result.Outcome = models.OutcomeUnchanged
			result.Reason = cmp.Reason
			stats.Unchanged++
			stats.BytesCompared += baseRec.Size + testRec.Size

		default:
			result.Outcome = models.OutcomeModified
			result.Reason = cmp.Reason
			stats.Modified++
		}

		results = append(results, result)
		if err := progress(result); err != nil {
			return nil, err
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].RelativePath < results[j].RelativePath
	})

	endTime := time.Now()
	status := models.StatusClean
	if stats.Missing+stats.Extra+stats.Modified+stats.Unreadable > 0 {
		status = models.StatusRegressed
	}

	report := &models.RegressionReport{
		RunID:           e.operation.ID,
		BasePath:        e.operation.BasePath,
		TestPath:        e.operation.TestPath,
		Method:          e.comparator.Name(),
		ExcludePatterns: e.operation.ExcludePatterns,
		StartTime:       startTime,
		EndTime:         endTime,
		Duration:        endTime.Sub(startTime),
		Stats:           stats,
		Results:         results,
		Status:          status,
	}

	e.logger.Info().
		Str("run_id", report.RunID).
		Str("status", string(report.Status)).
		Int("modified", stats.Modified).
		Int("missing", stats.Missing).
		Int("extra", stats.Extra).
		Int("unreadable", stats.Unreadable).
		Msg("comparison finished")

	if err := e.formatter.Complete(report); err != nil {
		return nil, err
	}

	return report, nil
}
