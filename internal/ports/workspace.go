package ports

import (
	"io"

	"fast-colcon/internal/types"
)

// PackageXMLPort parses a single package.xml into a descriptor.
type PackageXMLPort interface {
	// ParsePackage reads the manifest at path. The build type falls back to
	// types.DefaultBuildType when the <export> section or its <build_type>
	// element is missing.
	ParsePackage(path string) (types.PackageDescriptor, error)
}

// WorkspacePort discovers packages below workspace roots.
type WorkspacePort interface {
	// Classify inspects one directory without recursing.
	Classify(dir string) types.ScanOutcome

	// Scan emits root itself when it is a package, otherwise its children
	// that are packages, descending further only when recursive is set.
	// Only a failure to read root is returned as an error.
	Scan(root string, recursive bool) ([]types.DiscoveredEntry, error)
}

// SymlinkPort links each package's compile_commands.json into its build
// directory.
type SymlinkPort interface {
	Provision(entry types.DiscoveredEntry, buildBase string, opts types.ProvisionOptions) types.LinkResult
}

// ListingWriterPort renders discovered entries.
type ListingWriterPort interface {
	WriteListing(w io.Writer, entries []types.DiscoveredEntry, projection types.Projection, format types.OutputFormat) error
}
