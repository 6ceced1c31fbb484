// Package regress implements the regression comparison pipeline: inventory
// reconciliation, per-file comparison and test case synthesis.
package regress

import (
	"github.com/jvdberg/fileregress/pkg/inventory"
)

// Reconciliation splits the union of two inventories' relative paths into
// three disjoint sets. Every path in either inventory appears in exactly
// one of them.
type Reconciliation struct {
	// Common holds paths present in both inventories
	Common []string

	// Missing holds paths present in the base inventory only
	Missing []string

	// Extra holds paths present in the test inventory only
	Extra []string
}

// Total returns the number of unique paths across both inventories.
func (r Reconciliation) Total() int {
	return len(r.Common) + len(r.Missing) + len(r.Extra)
}

// Reconcile computes the set split between a base and a test inventory.
// Pure function, no I/O; output slices are sorted.
func Reconcile(base, test *inventory.Inventory) Reconciliation {
	var rec Reconciliation

	for _, path := range base.Paths() {
		if test.Contains(path) {
			rec.Common = append(rec.Common, path)
		} else {
			rec.Missing = append(rec.Missing, path)
		}
	}

	for _, path := range test.Paths() {
		if !base.Contains(path) {
			rec.Extra = append(rec.Extra, path)
		}
	}

	return rec
}
