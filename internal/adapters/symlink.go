package adapters

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"fast-colcon/internal/ports"
	"fast-colcon/internal/types"
)

const (
	buildDescriptionName = "CMakeLists.txt"
	compileCommandsName  = "compile_commands.json"
)

// SymlinkAdapter points <package>/compile_commands.json at the copy the
// build produces under <build base>/<package name>/.
type SymlinkAdapter struct {
	Out io.Writer
}

func NewSymlinkAdapter(out io.Writer) SymlinkAdapter {
	return SymlinkAdapter{Out: out}
}

// Provision never returns an error; failures are recorded on the result so
// the caller can move on to the next package.
func (a SymlinkAdapter) Provision(entry types.DiscoveredEntry, buildBase string, opts types.ProvisionOptions) types.LinkResult {
	linkPath := filepath.Join(entry.Path, compileCommandsName)
	targetPath := filepath.Join(buildBase, entry.Package.Name, compileCommandsName)
	result := types.LinkResult{Entry: entry, LinkPath: linkPath, TargetPath: targetPath}

	if _, err := os.Stat(filepath.Join(entry.Path, buildDescriptionName)); err != nil {
		a.report(opts, "[INFO] Skipping %s: no %s in %s\n", entry.Package.Name, buildDescriptionName, entry.Path)
		result.Status = types.LinkStatusSkipped
		return result
	}

	if opts.Force && isSymlink(linkPath) {
		if err := os.Remove(linkPath); err != nil {
			a.report(opts, "[ERROR] Failed to remove existing link %s: %v\n", linkPath, err)
			return failed(result, "failed to remove existing link", err)
		}
	}

	if err := os.Symlink(targetPath, linkPath); err != nil {
		if errors.Is(err, os.ErrExist) {
			a.report(opts, "[WARNING] %s already exists, use --force to replace it\n", linkPath)
			return failed(result, "link path already exists", err)
		}
		a.report(opts, "[ERROR] Failed to create link %s -> %s: %v\n", linkPath, targetPath, err)
		return failed(result, "failed to create link", err)
	}

	a.report(opts, "[INFO] Created link %s -> %s\n", linkPath, targetPath)
	result.Status = types.LinkStatusCreated
	return result
}

func (a SymlinkAdapter) report(opts types.ProvisionOptions, format string, args ...any) {
	if opts.Quiet || a.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(a.Out, format, args...)
}

func isSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

func failed(result types.LinkResult, msg string, cause error) types.LinkResult {
	result.Status = types.LinkStatusFailed
	result.Err = errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(msg + ": " + result.LinkPath).
		WithCause(cause)
	return result
}

var _ ports.SymlinkPort = SymlinkAdapter{}
