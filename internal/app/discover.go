package app

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"fast-colcon/internal/core"
	"fast-colcon/internal/types"
)

// Discover scans the requested locations and returns entries sorted by
// (name, path) with exact duplicates removed.
func (s Service) Discover(ctx context.Context, req DiscoverRequest) ([]types.DiscoveredEntry, error) {
	var found []types.DiscoveredEntry

	candidates := core.NormalizePaths(req.Paths)
	for _, path := range candidates {
		entries, err := s.Workspace.Scan(path, false)
		if err != nil {
			return nil, err
		}
		found = append(found, entries...)
	}

	bases := core.NormalizePaths(req.BasePaths)
	if len(candidates) == 0 && len(bases) == 0 {
		cwd, err := s.workingDir()
		if err != nil {
			return nil, err
		}
		bases = core.NormalizePaths([]string{cwd})
	}
	for _, base := range bases {
		entries, err := s.Workspace.Scan(base, true)
		if err != nil {
			return nil, err
		}
		found = append(found, entries...)
	}

	aggregated := core.Aggregate(found)
	for _, name := range core.DuplicateNames(aggregated) {
		s.Diagnostics.Report(types.Diagnostic{
			Code:    types.DiagnosticDuplicatePackageName,
			Message: "package name found at more than one path: " + name,
		})
	}
	log.Debug().
		Int("candidates", len(candidates)).
		Int("bases", len(bases)).
		Int("packages", len(aggregated)).
		Msg("discovery completed")
	return aggregated, nil
}

func (s Service) workingDir() (string, error) {
	getwd := s.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	cwd, err := getwd()
	if err != nil || strings.TrimSpace(cwd) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to determine working directory").
			WithCause(err)
	}
	return cwd, nil
}
