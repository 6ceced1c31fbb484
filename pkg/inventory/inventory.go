// Package inventory builds the filtered set of relative file paths under
// one root folder, the unit the regression comparison operates on.
package inventory

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/jvdberg/fileregress/pkg/models"
	"github.com/jvdberg/fileregress/pkg/storage"
)

// Inventory is the exclusion-filtered collection of regular files under one
// root. It is built once per run and immutable afterwards.
type Inventory struct {
	root    string
	records map[string]models.FileRecord
	paths   []string
}

// Build walks the backend recursively and records every regular file whose
// relative path is not excluded by the rules. Relative paths are
// slash-normalized and deduplicated.
func Build(ctx context.Context, backend storage.Backend, rules Rules) (*Inventory, error) {
	entries, err := backend.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to inventory folder: %w", err)
	}

	inv := &Inventory{
		records: make(map[string]models.FileRecord, len(entries)),
	}

	for _, entry := range entries {
		if entry.IsDir {
			continue
		}

		rel := filepath.ToSlash(entry.RelativePath)
		if rel == "." || rel == "" {
			continue
		}
		if rules.Match(rel) {
			continue
		}

		if _, seen := inv.records[rel]; seen {
			continue
		}

		inv.records[rel] = models.FileRecord{
			RelativePath: rel,
			AbsolutePath: entry.Path,
			Size:         entry.Size,
			ModTime:      entry.ModTime,
		}
		inv.paths = append(inv.paths, rel)
	}

	sort.Strings(inv.paths)

	return inv, nil
}

// Paths returns the sorted relative paths in the inventory.
func (inv *Inventory) Paths() []string {
	paths := make([]string, len(inv.paths))
	copy(paths, inv.paths)
	return paths
}

// Record returns the file record for a relative path.
func (inv *Inventory) Record(relativePath string) (models.FileRecord, bool) {
	rec, ok := inv.records[relativePath]
	return rec, ok
}

// Contains checks whether a relative path is present in the inventory.
func (inv *Inventory) Contains(relativePath string) bool {
	_, ok := inv.records[relativePath]
	return ok
}

// Len returns the number of files in the inventory.
func (inv *Inventory) Len() int {
	return len(inv.paths)
}
