package cli

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fast-colcon/internal/app"
	"fast-colcon/internal/types"
)

type selectionOptions struct {
	BasePaths []string
	Paths     []string
}

type listOptions struct {
	selectionOptions
	TopologicalOrder bool
	NamesOnly        bool
	PathsOnly        bool
	Format           string
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packages, optionally in topological ordering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.TopologicalOrder, "topological-order", "t", false, "Not implemented; packages are listed by name")
	cmd.Flags().BoolVarP(&opts.NamesOnly, "names-only", "n", false, "Output only the name of each package but not the path")
	cmd.Flags().BoolVarP(&opts.PathsOnly, "paths-only", "p", false, "Output only the path of each package but not the name")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatText), "Output format (text, yaml)")
	cmd.MarkFlagsMutuallyExclusive("names-only", "paths-only")
	addSelectionFlags(cmd, &opts.selectionOptions)

	_ = viper.BindPFlag("names_only", cmd.Flags().Lookup("names-only"))
	_ = viper.BindPFlag("paths_only", cmd.Flags().Lookup("paths-only"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func addSelectionFlags(cmd *cobra.Command, opts *selectionOptions) {
	cmd.Flags().StringSliceVar(&opts.BasePaths, "base-paths", nil, "The base paths to recursively crawl for packages")
	cmd.Flags().StringSliceVar(&opts.Paths, "paths", nil, "The paths to check for a package; use shell wildcards (e.g. `src/*`) to select direct subdirectories")
	_ = viper.BindPFlag("base_paths", cmd.Flags().Lookup("base-paths"))
	_ = viper.BindPFlag("paths", cmd.Flags().Lookup("paths"))
}

func resolveSelection(cmd *cobra.Command, opts selectionOptions) app.DiscoverRequest {
	return app.DiscoverRequest{
		Paths:     resolveStrings(cmd, opts.Paths, "paths", "paths"),
		BasePaths: resolveStrings(cmd, opts.BasePaths, "base_paths", "base-paths"),
	}
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	namesOnly := resolveBool(cmd, opts.NamesOnly, "names_only", "names-only")
	pathsOnly := resolveBool(cmd, opts.PathsOnly, "paths_only", "paths-only")
	if namesOnly && pathsOnly {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("names-only and paths-only cannot be combined")
	}
	projection := types.ProjectionFull
	switch {
	case namesOnly:
		projection = types.ProjectionNames
	case pathsOnly:
		projection = types.ProjectionPaths
	}

	service := newAppService()
	_, err := service.List(ctx, app.ListRequest{
		DiscoverRequest:  resolveSelection(cmd, opts.selectionOptions),
		TopologicalOrder: opts.TopologicalOrder,
		Projection:       projection,
		Format:           types.OutputFormat(resolveString(cmd, opts.Format, "format", "format")),
	})
	return err
}
