package regress

import (
	"fmt"

	"github.com/jvdberg/fileregress/pkg/models"
)

// Case is one synthesized per-file test unit. It passes only when the file
// is present in both folders with identical content; otherwise Message
// explains what went wrong.
type Case struct {
	// Name identifies the case: the file's relative path
	Name string

	// Outcome is the file's classification for this run
	Outcome models.Outcome

	// Message is the failure message for failed cases
	Message string
}

// Failed reports whether the case counts as a test failure.
func (c Case) Failed() bool {
	return c.Outcome.Failed()
}

// Cases synthesizes exactly one test case per relative path in the report,
// in report order. This is the parameterization step: each discovered file
// gets its own pass/fail identity instead of one aggregate verdict for the
// whole tree.
func Cases(report *models.RegressionReport) []Case {
	cases := make([]Case, 0, len(report.Results))
	for _, res := range report.Results {
		c := Case{
			Name:    res.RelativePath,
			Outcome: res.Outcome,
		}
		if res.Outcome.Failed() {
			c.Message = fmt.Sprintf("%s: %s", res.RelativePath, res.Reason)
		}
		cases = append(cases, c)
	}
	return cases
}
