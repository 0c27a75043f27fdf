package app

import "fast-colcon/internal/types"

// DiscoverRequest selects where packages are looked for. Paths are checked
// as packages themselves and one level below; BasePaths are crawled
// recursively. With both empty the working directory is crawled.
type DiscoverRequest struct {
	Paths     []string
	BasePaths []string
}

type ListRequest struct {
	DiscoverRequest
	TopologicalOrder bool
	Projection       types.Projection
	Format           types.OutputFormat
}

type ListResult struct {
	Entries []types.DiscoveredEntry
}

type SymlinkRequest struct {
	DiscoverRequest
	BuildBase string
	Force     bool
	Quiet     bool
}

type SymlinkResult struct {
	BuildBase string
	Links     []types.LinkResult
	Created   int
	Skipped   int
	Failed    int
}
