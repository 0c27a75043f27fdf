package core

import (
	"sort"

	"fast-colcon/internal/types"
)

// Aggregate orders entries by (name, path) and collapses exact duplicates.
// Entries sharing a name at different paths are all kept. The input slice is
// not modified.
func Aggregate(entries []types.DiscoveredEntry) []types.DiscoveredEntry {
	ordered := append([]types.DiscoveredEntry(nil), entries...)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Package.Name != ordered[j].Package.Name {
			return ordered[i].Package.Name < ordered[j].Package.Name
		}
		return ordered[i].Path < ordered[j].Path
	})
	result := make([]types.DiscoveredEntry, 0, len(ordered))
	for _, entry := range ordered {
		if len(result) > 0 && result[len(result)-1].SameAs(entry) {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// DuplicateNames returns, in order, the names found at more than one path in
// an aggregated listing.
func DuplicateNames(aggregated []types.DiscoveredEntry) []string {
	var names []string
	for i := 1; i < len(aggregated); i++ {
		name := aggregated[i].Package.Name
		if name != aggregated[i-1].Package.Name {
			continue
		}
		if len(names) > 0 && names[len(names)-1] == name {
			continue
		}
		names = append(names, name)
	}
	return names
}
