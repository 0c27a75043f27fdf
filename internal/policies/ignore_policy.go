package policies

import (
	"os"
	"path/filepath"
	"strings"
)

// IgnoreMarkers are the files whose presence excludes a directory subtree
// from discovery. colcon, catkin and ament each introduced one.
var IgnoreMarkers = []string{"COLCON_IGNORE", "CATKIN_IGNORE", "AMENT_IGNORE"}

type IgnorePolicy struct {
	markers []string
}

func NewIgnorePolicy() IgnorePolicy {
	return IgnorePolicy{markers: IgnoreMarkers}
}

// Excluded reports whether dir must be skipped. Hidden directories are
// excluded before marker files are looked up.
func (p IgnorePolicy) Excluded(dir string) bool {
	if isHidden(dir) {
		return true
	}
	for _, marker := range p.markers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// isHidden looks at the final path element only. "." and ".." name no
// directory of their own and are never hidden.
func isHidden(dir string) bool {
	base := filepath.Base(filepath.Clean(dir))
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return false
	}
	return strings.HasPrefix(base, ".")
}
