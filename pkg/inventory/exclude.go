package inventory

import (
	"path/filepath"
	"strings"
)

// Rules is a set of glob-style exclusion patterns. A path is excluded when
// it matches any rule in the set. Supported forms:
//   - Basename globs: *.tmp, *.log
//   - Directory patterns: .git/, node_modules/
//   - Path patterns: build/*, **/test/*
type Rules []string

// Match checks whether the given relative path is excluded by the rules.
func (r Rules) Match(relativePath string) bool {
	if len(r) == 0 {
		return false
	}

	// Normalize path separators for cross-platform support
	normalizedPath := filepath.ToSlash(relativePath)
	baseName := filepath.Base(relativePath)

	for _, pattern := range r {
		if pattern == "" {
			continue
		}

		normalizedPattern := filepath.ToSlash(pattern)

		// Directory pattern (ends with /): excludes everything under it
		if strings.HasSuffix(normalizedPattern, "/") {
			dirPattern := strings.TrimSuffix(normalizedPattern, "/")
			if strings.HasPrefix(normalizedPath, dirPattern+"/") ||
				normalizedPath == dirPattern ||
				strings.Contains(normalizedPath, "/"+dirPattern+"/") {
				return true
			}
			continue
		}

		// ** matches at any path depth
		if strings.Contains(normalizedPattern, "**") {
			parts := strings.Split(normalizedPattern, "**/")
			if len(parts) == 2 && parts[0] == "" {
				suffix := parts[1]
				if matchGlob(baseName, suffix) {
					return true
				}
				if strings.HasSuffix(normalizedPath, "/"+suffix) || normalizedPath == suffix {
					return true
				}
				if matchGlobComponents(normalizedPath, suffix) {
					return true
				}
			}
			continue
		}

		if strings.Contains(normalizedPattern, "/") {
			// Pattern applies to the full relative path
			matched, _ := filepath.Match(normalizedPattern, normalizedPath)
			if matched {
				return true
			}
			// Also match from the end, for patterns like build/*
			if strings.HasSuffix(normalizedPath, normalizedPattern) {
				return true
			}
		} else {
			// Pattern applies to the basename only
			matched, _ := filepath.Match(normalizedPattern, baseName)
			if matched {
				return true
			}
		}
	}

	return false
}

// matchGlob performs glob matching on a single path component
func matchGlob(name, pattern string) bool {
	matched, _ := filepath.Match(pattern, name)
	return matched
}

// matchGlobComponents checks if any component of the path matches the pattern
func matchGlobComponents(path, pattern string) bool {
	for _, part := range strings.Split(path, "/") {
		if matchGlob(part, pattern) {
			return true
		}
	}
	return false
}
