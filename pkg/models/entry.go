package models

import (
	"time"
)

// FileRecord describes one regular file discovered during inventory.
// Identity is the relative path: two records from different inventories
// refer to the same logical file iff their relative paths are equal.
type FileRecord struct {
	// RelativePath is the slash-separated path relative to the inventory root
	RelativePath string `json:"relative_path"`

	// AbsolutePath is the full path on the filesystem
	AbsolutePath string `json:"-"`

	// Size in bytes
	Size int64 `json:"size"`

	// ModTime is the last modification time
	ModTime time.Time `json:"mod_time"`

	// Digest is the content digest, computed on demand (may be empty)
	Digest string `json:"digest,omitempty"`
}
