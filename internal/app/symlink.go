package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"fast-colcon/internal/shared"
	"fast-colcon/internal/types"
)

// Symlink links compile_commands.json for every discovered package. Only
// discovery and build-base resolution can fail the call; per-package
// failures are counted in the result.
func (s Service) Symlink(ctx context.Context, req SymlinkRequest) (SymlinkResult, error) {
	buildBase := strings.TrimSpace(req.BuildBase)
	if buildBase == "" {
		return SymlinkResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("build base is required")
	}
	resolved, err := shared.ResolveDirectory(buildBase)
	if err != nil {
		return SymlinkResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve build base " + buildBase).
			WithCause(err)
	}
	assert.NotEmpty(ctx, resolved, "resolved build base must not be empty")

	entries, err := s.Discover(ctx, req.DiscoverRequest)
	if err != nil {
		return SymlinkResult{}, err
	}

	result := SymlinkResult{BuildBase: resolved}
	opts := types.ProvisionOptions{Quiet: req.Quiet, Force: req.Force}
	for _, entry := range entries {
		link := s.Symlinks.Provision(entry, resolved, opts)
		switch link.Status {
		case types.LinkStatusCreated:
			result.Created++
		case types.LinkStatusSkipped:
			result.Skipped++
		case types.LinkStatusFailed:
			result.Failed++
			log.Debug().Err(link.Err).Str("package", entry.Package.Name).Msg("link not created")
		}
		result.Links = append(result.Links, link)
	}
	summary := log.Info()
	if req.Quiet {
		summary = log.Debug()
	}
	summary.
		Str("build_base", resolved).
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("symlink provisioning finished")
	return result, nil
}
