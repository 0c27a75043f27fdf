package core

import "path/filepath"

// NormalizePaths drops repeated neighbours, resolves each path to its
// absolute symlink-free form and drops repeated neighbours again. A path
// that cannot be resolved, for example one that does not exist, is kept
// unchanged. Order of first occurrence is preserved.
func NormalizePaths(paths []string) []string {
	deduped := dedupAdjacent(paths)
	canonical := make([]string, 0, len(deduped))
	for _, path := range deduped {
		canonical = append(canonical, canonicalize(path))
	}
	return dedupAdjacent(canonical)
}

func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return path
	}
	return resolved
}

func dedupAdjacent(values []string) []string {
	result := make([]string, 0, len(values))
	for i, value := range values {
		if i > 0 && values[i-1] == value {
			continue
		}
		result = append(result, value)
	}
	return result
}
