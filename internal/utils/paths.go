package utils

import (
	"path/filepath"
	"strings"
)

// HasHiddenSegment reports whether any segment of path starts with a dot.
// Files under hidden directories (".git", ".idea", ...) are never tracked.
func HasHiddenSegment(path string) bool {
	cleaned := filepath.ToSlash(filepath.Clean(path))
	for _, segment := range strings.Split(cleaned, "/") {
		if len(segment) > 1 && segment[0] == '.' && segment != ".." {
			return true
		}
	}
	return false
}
