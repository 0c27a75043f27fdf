package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fast-colcon/internal/types"
)

func writePackage(t *testing.T, dir string, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "<package format=\"3\"><name>" + name + "</name></package>"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.xml"), []byte(content), 0644))
}

func workspaceRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return root
}

func newTestService(root string) (Service, *bytes.Buffer, *[]types.Diagnostic) {
	out := &bytes.Buffer{}
	diagnostics := &[]types.Diagnostic{}
	service := NewServiceWithOutput(out, func(d types.Diagnostic) {
		*diagnostics = append(*diagnostics, d)
	})
	service.Getwd = func() (string, error) { return root, nil }
	return service, out, diagnostics
}

func discoveredNames(entries []types.DiscoveredEntry) []string {
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Package.Name)
	}
	return names
}

func TestDiscoverDefaultsToWorkingDirectory(t *testing.T) {
	root := workspaceRoot(t)
	writePackage(t, filepath.Join(root, "src", "b"), "b")
	writePackage(t, filepath.Join(root, "src", "nested", "a"), "a")

	service, _, _ := newTestService(root)
	entries, err := service.Discover(context.Background(), DiscoverRequest{})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"a", "b"}, discoveredNames(entries)); diff != "" {
		t.Fatalf("unexpected packages (-want +got):\n%s", diff)
	}
	assert.Equal(t, filepath.Join(root, "src", "nested", "a"), entries[0].Path)
}

func TestDiscoverSymlinkedWorkingDirectory(t *testing.T) {
	root := workspaceRoot(t)
	real := filepath.Join(root, "data", "ws")
	writePackage(t, filepath.Join(real, "src", "a"), "a")
	link := filepath.Join(root, "ws")
	require.NoError(t, os.Symlink(real, link))

	service, _, _ := newTestService(link)
	entries, err := service.Discover(context.Background(), DiscoverRequest{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(real, "src", "a"), entries[0].Path)
}

func TestDiscoverPathsAreNotCrawled(t *testing.T) {
	root := workspaceRoot(t)
	writePackage(t, filepath.Join(root, "src", "a"), "a")
	writePackage(t, filepath.Join(root, "src", "group", "b"), "b")

	service, _, _ := newTestService(root)
	entries, err := service.Discover(context.Background(), DiscoverRequest{
		Paths: []string{filepath.Join(root, "src")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, discoveredNames(entries))
}

func TestDiscoverCombinesPathsAndBasePaths(t *testing.T) {
	root := workspaceRoot(t)
	writePackage(t, filepath.Join(root, "one", "a"), "a")
	writePackage(t, filepath.Join(root, "two", "deep", "b"), "b")
	writePackage(t, filepath.Join(root, "three", "c"), "c")

	service, _, _ := newTestService(root)
	entries, err := service.Discover(context.Background(), DiscoverRequest{
		Paths:     []string{filepath.Join(root, "one", "a")},
		BasePaths: []string{filepath.Join(root, "two")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, discoveredNames(entries))
}

func TestDiscoverCollapsesAliasedRoots(t *testing.T) {
	root := workspaceRoot(t)
	ws := filepath.Join(root, "ws")
	writePackage(t, filepath.Join(ws, "pkgC"), "c")
	require.NoError(t, os.Symlink(ws, filepath.Join(root, "alias")))

	service, _, _ := newTestService(root)
	entries, err := service.Discover(context.Background(), DiscoverRequest{
		BasePaths: []string{ws, filepath.Join(root, "alias"), ws},
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(ws, "pkgC"), entries[0].Path)
}

func TestDiscoverKeepsSameNameAtDifferentPaths(t *testing.T) {
	root := workspaceRoot(t)
	writePackage(t, filepath.Join(root, "overlay", "dup"), "dup")
	writePackage(t, filepath.Join(root, "underlay", "dup"), "dup")

	service, _, diagnostics := newTestService(root)
	entries, err := service.Discover(context.Background(), DiscoverRequest{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, filepath.Join(root, "overlay", "dup"), entries[0].Path)
	assert.Equal(t, filepath.Join(root, "underlay", "dup"), entries[1].Path)
	require.Len(t, *diagnostics, 1)
	assert.Equal(t, types.DiagnosticDuplicatePackageName, (*diagnostics)[0].Code)
}
