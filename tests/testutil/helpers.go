// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// Workspace returns a fresh, symlink-free temporary directory so paths
// reported by discovery can be compared verbatim.
func Workspace(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// WritePackage creates dir/package.xml declaring name. A non-empty buildType
// is written as <export><build_type>.
func WritePackage(t *testing.T, dir string, name string, buildType string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "<?xml version=\"1.0\"?>\n<package format=\"3\">\n  <name>" + name + "</name>\n  <version>0.1.0</version>\n"
	if buildType != "" {
		content += "  <export>\n    <build_type>" + buildType + "</build_type>\n  </export>\n"
	}
	content += "</package>\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.xml"), []byte(content), 0644))
	return dir
}

// Touch creates an empty file, making parent directories as needed.
func Touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}
