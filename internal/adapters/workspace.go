package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"fast-colcon/internal/policies"
	"fast-colcon/internal/ports"
	"fast-colcon/internal/types"
)

type WorkspaceAdapter struct {
	policy    policies.IgnorePolicy
	manifests ports.PackageXMLPort
	sink      types.DiagnosticSink
}

func NewWorkspaceAdapter(manifests ports.PackageXMLPort, sink types.DiagnosticSink) WorkspaceAdapter {
	return WorkspaceAdapter{
		policy:    policies.NewIgnorePolicy(),
		manifests: manifests,
		sink:      sink,
	}
}

// Classify never follows a symlink: a link to a directory is NotADirectory.
func (a WorkspaceAdapter) Classify(dir string) types.ScanOutcome {
	info, err := os.Lstat(dir)
	if err != nil || !info.IsDir() {
		return types.NotADirectory{}
	}
	return a.classifyDir(dir)
}

// classifyRoot resolves a symlinked root, since the caller named it
// explicitly.
func (a WorkspaceAdapter) classifyRoot(root string) types.ScanOutcome {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return types.NotADirectory{}
	}
	return a.classifyDir(root)
}

func (a WorkspaceAdapter) classifyDir(dir string) types.ScanOutcome {
	if a.policy.Excluded(dir) {
		return types.Ignored{}
	}
	manifest := filepath.Join(dir, packageXMLName)
	if _, err := os.Stat(manifest); err == nil {
		pkg, err := a.manifests.ParsePackage(manifest)
		if err == nil {
			return types.Found{Entry: types.DiscoveredEntry{Package: pkg, Path: dir}}
		}
		a.sink.Report(types.Diagnostic{
			Code:    types.DiagnosticManifestParseFailed,
			Message: "manifest could not be parsed, treating directory as non-package",
			Path:    manifest,
			Cause:   err,
		})
	}
	return types.Descend{}
}

func (a WorkspaceAdapter) Scan(root string, recursive bool) ([]types.DiscoveredEntry, error) {
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace root is empty")
	}
	// The ignore policy governs what is found below a root, not the root
	// itself: an ignored root is still enumerated.
	switch outcome := a.classifyRoot(root).(type) {
	case types.Found:
		return []types.DiscoveredEntry{outcome.Entry}, nil
	case types.NotADirectory:
		return nil, nil
	case types.Ignored, types.Descend:
	}

	children, err := os.ReadDir(root)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read workspace root " + root).
			WithCause(err)
	}
	var results []types.DiscoveredEntry
	a.visit(root, children, recursive, &results)
	return results, nil
}

func (a WorkspaceAdapter) visit(dir string, children []os.DirEntry, recursive bool, results *[]types.DiscoveredEntry) {
	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		switch outcome := a.Classify(path).(type) {
		case types.Found:
			*results = append(*results, outcome.Entry)
		case types.Descend:
			if recursive {
				a.descend(path, results)
			}
		case types.Ignored, types.NotADirectory:
		}
	}
}

func (a WorkspaceAdapter) descend(dir string, results *[]types.DiscoveredEntry) {
	children, err := os.ReadDir(dir)
	if err != nil {
		a.sink.Report(types.Diagnostic{
			Code:    types.DiagnosticDirectoryUnreadable,
			Message: "skipping unreadable directory",
			Path:    dir,
			Cause:   err,
		})
		return
	}
	a.visit(dir, children, true, results)
}

var _ ports.WorkspacePort = WorkspaceAdapter{}
