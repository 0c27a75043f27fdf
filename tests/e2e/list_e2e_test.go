package e2e

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fast-colcon/internal/app"
	"fast-colcon/tests/testutil"
)

func listService(cwd string) (app.Service, *bytes.Buffer) {
	out := &bytes.Buffer{}
	service := app.NewServiceWithOutput(out, nil)
	service.Getwd = func() (string, error) { return cwd, nil }
	return service, out
}

func TestListSinglePackageWithDotDirectory(t *testing.T) {
	root := testutil.Workspace(t)
	pkgA := testutil.WritePackage(t, filepath.Join(root, "pkgA"), "a", "")
	testutil.Touch(t, filepath.Join(pkgA, ".git", "package.xml"))

	service, out := listService(root)
	_, err := service.List(context.Background(), app.ListRequest{})
	require.NoError(t, err)
	if diff := cmp.Diff("a\t"+pkgA+"\t(ros.catkin)\n", out.String()); diff != "" {
		t.Fatalf("unexpected listing (-want +got):\n%s", diff)
	}
}

func TestListIgnoredPackagePrintsNothing(t *testing.T) {
	root := testutil.Workspace(t)
	pkgB := testutil.WritePackage(t, filepath.Join(root, "pkgB"), "b", "ament_cmake")
	testutil.Touch(t, filepath.Join(pkgB, "COLCON_IGNORE"))
	testutil.WritePackage(t, filepath.Join(pkgB, "nested"), "nested", "")

	service, out := listService(root)
	result, err := service.List(context.Background(), app.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
	assert.Empty(t, out.String())
}

func TestListAliasedRootsReportOnce(t *testing.T) {
	root := testutil.Workspace(t)
	ws := filepath.Join(root, "ws")
	pkgC := testutil.WritePackage(t, filepath.Join(ws, "pkgC"), "c", "ament_python")
	alias := filepath.Join(root, "ws_alias")
	require.NoError(t, os.Symlink(ws, alias))

	service, out := listService(root)
	result, err := service.List(context.Background(), app.ListRequest{
		DiscoverRequest: app.DiscoverRequest{BasePaths: []string{ws, alias}},
	})
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "c\t"+pkgC+"\t(ament_python)\n", out.String())
}

func TestListCommandE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	root := testutil.RepoRoot(t)
	ws := testutil.Workspace(t)
	pkg := testutil.WritePackage(t, filepath.Join(ws, "src", "demo"), "demo", "ament_cmake")

	cmd := exec.Command("go", "run", "./cmd/fast-colcon", "list",
		"--base-paths", ws,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	require.NoError(t, cmd.Run())
	assert.Equal(t, "demo\t"+pkg+"\t(ament_cmake)\n", stdout.String())
}
