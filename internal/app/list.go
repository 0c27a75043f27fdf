package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"fast-colcon/internal/types"
)

var validProjections = map[types.Projection]struct{}{
	types.ProjectionFull:  {},
	types.ProjectionNames: {},
	types.ProjectionPaths: {},
}

var validFormats = map[types.OutputFormat]struct{}{
	types.OutputFormatText: {},
	types.OutputFormatYAML: {},
}

func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	projection := req.Projection
	if projection == "" {
		projection = types.ProjectionFull
	}
	if _, ok := validProjections[projection]; !ok {
		return ListResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown listing projection: " + string(projection))
	}
	format := req.Format
	if format == "" {
		format = types.OutputFormatText
	}
	if _, ok := validFormats[format]; !ok {
		return ListResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown output format: " + string(format))
	}
	if req.TopologicalOrder {
		log.Debug().Msg("topological ordering is not implemented, listing by name")
	}

	entries, err := s.Discover(ctx, req.DiscoverRequest)
	if err != nil {
		return ListResult{}, err
	}
	if err := s.Listing.WriteListing(s.Out, entries, projection, format); err != nil {
		return ListResult{}, err
	}
	return ListResult{Entries: entries}, nil
}
