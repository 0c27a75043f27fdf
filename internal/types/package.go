package types

// DefaultBuildType is reported for manifests without an <export><build_type>.
const DefaultBuildType = "ros.catkin"

type PackageDescriptor struct {
	Name      string
	BuildType string
}

// DiscoveredEntry is a package paired with the directory holding its
// package.xml. Two entries are the same only when name and path both match.
type DiscoveredEntry struct {
	Package PackageDescriptor
	Path    string
}

func (e DiscoveredEntry) SameAs(other DiscoveredEntry) bool {
	return e.Package.Name == other.Package.Name && e.Path == other.Path
}
