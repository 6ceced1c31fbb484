package models

// Outcome classifies one relative path after reconciliation and comparison.
// Every path in the union of both inventories lands in exactly one outcome
// per run.
type Outcome string

const (
	// OutcomeUnchanged indicates the file is present in both folders with identical content
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeModified indicates the file is present in both folders but content differs
	OutcomeModified Outcome = "modified"
	// OutcomeMissing indicates the file is present in the base folder only
	OutcomeMissing Outcome = "missing"
	// OutcomeExtra indicates the file is present in the test folder only
	OutcomeExtra Outcome = "extra"
	// OutcomeUnreadable indicates the file could not be read on at least one side
	OutcomeUnreadable Outcome = "unreadable"
)

// Failed reports whether the outcome counts as a regression.
func (o Outcome) Failed() bool {
	return o != OutcomeUnchanged
}

// FileResult is the classification of one relative path, with the records
// from whichever sides the file was found on.
type FileResult struct {
	RelativePath string      `json:"relative_path"`
	Outcome      Outcome     `json:"outcome"`
	Reason       string      `json:"reason,omitempty"`
	BaseRecord   *FileRecord `json:"base,omitempty"`
	TestRecord   *FileRecord `json:"test,omitempty"`
}
