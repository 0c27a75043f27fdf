package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fast-colcon/internal/types"
)

func writeCMakePackage(t *testing.T, dir string, name string) {
	t.Helper()
	writePackage(t, dir, name)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CMakeLists.txt"), []byte("project("+name+")"), 0644))
}

func TestSymlinkContinuesAfterFailure(t *testing.T) {
	root := workspaceRoot(t)
	writeCMakePackage(t, filepath.Join(root, "src", "a"), "a")
	writeCMakePackage(t, filepath.Join(root, "src", "b"), "b")
	writePackage(t, filepath.Join(root, "src", "py"), "py")
	require.NoError(t, os.Symlink("/elsewhere", filepath.Join(root, "src", "a", "compile_commands.json")))

	service, out, _ := newTestService(root)
	result, err := service.Symlink(context.Background(), SymlinkRequest{
		DiscoverRequest: DiscoverRequest{BasePaths: []string{filepath.Join(root, "src")}},
		BuildBase:       filepath.Join(root, "build"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Links, 3)
	assert.Equal(t, types.LinkStatusFailed, result.Links[0].Status)
	assert.Equal(t, types.LinkStatusCreated, result.Links[1].Status)
	assert.Equal(t, types.LinkStatusSkipped, result.Links[2].Status)
	assert.Contains(t, out.String(), "[WARNING]")
	assert.Contains(t, out.String(), "[INFO] Created link")
}

func TestSymlinkResolvesRelativeBuildBase(t *testing.T) {
	root := workspaceRoot(t)
	writeCMakePackage(t, filepath.Join(root, "pkg"), "pkg")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	service, _, _ := newTestService(root)
	result, err := service.Symlink(context.Background(), SymlinkRequest{
		DiscoverRequest: DiscoverRequest{Paths: []string{filepath.Join(root, "pkg")}},
		BuildBase:       "build-not-there-yet",
		Quiet:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "build-not-there-yet"), result.BuildBase)
	target, err := os.Readlink(filepath.Join(root, "pkg", "compile_commands.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "build-not-there-yet", "pkg", "compile_commands.json"), target)
}

func TestSymlinkRequiresBuildBase(t *testing.T) {
	service, _, _ := newTestService(workspaceRoot(t))
	_, err := service.Symlink(context.Background(), SymlinkRequest{BuildBase: "  "})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
