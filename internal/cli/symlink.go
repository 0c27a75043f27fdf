package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fast-colcon/internal/app"
)

type symlinkOptions struct {
	selectionOptions
	BuildBase string
	Force     bool
	Quiet     bool
}

func newSymlinkCommand() *cobra.Command {
	opts := symlinkOptions{}
	cmd := &cobra.Command{
		Use:   "symlink",
		Short: "Link each package's compile_commands.json to its build directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSymlink(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.BuildBase, "build-base", "build", "The base path for all build directories")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Replace existing compile_commands.json symlinks")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Do not report created or skipped links")
	addSelectionFlags(cmd, &opts.selectionOptions)

	_ = viper.BindPFlag("build_base", cmd.Flags().Lookup("build-base"))
	_ = viper.BindPFlag("force", cmd.Flags().Lookup("force"))
	_ = viper.BindPFlag("quiet", cmd.Flags().Lookup("quiet"))
	return cmd
}

func runSymlink(ctx context.Context, cmd *cobra.Command, opts symlinkOptions) error {
	service := newAppService()
	_, err := service.Symlink(ctx, app.SymlinkRequest{
		DiscoverRequest: resolveSelection(cmd, opts.selectionOptions),
		BuildBase:       resolveString(cmd, opts.BuildBase, "build_base", "build-base"),
		Force:           resolveBool(cmd, opts.Force, "force", "force"),
		Quiet:           resolveBool(cmd, opts.Quiet, "quiet", "quiet"),
	})
	return err
}
