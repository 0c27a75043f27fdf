// Package shared provides common utility functions used across multiple
// packages in the fast-colcon codebase.
package shared

import (
	"os"
	"path/filepath"
)

// ResolveDirectory returns the canonical form of an existing path. A path
// that is not on disk yet, such as a build directory before the first
// build, is made absolute against the working directory instead.
func ResolveDirectory(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			return filepath.Abs(resolved)
		}
	}
	return filepath.Abs(path)
}
