package cli

import (
	"errors"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fast-colcon/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "FAST_COLCON"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
	LogBase    string
}

func Execute() {
	root := newRootCommand()
	root.SetArgs(expandMultiValueFlags(os.Args[1:]))
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

// newAppService is swapped in tests to capture output.
var newAppService = app.NewService

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:          "fast-colcon",
		Short:        "Fast colcon list replacement",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.LogBase, "log-base", "", "Accepted for colcon compatibility; nothing is logged there")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newSymlinkCommand())
	return cmd
}

// initConfig reads an explicit --config file, or else the first
// fast-colcon.yaml found in the working directory or ~/.config/fast-colcon.
// A missing default config is fine; a broken one is not.
func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile == "" {
		viper.SetConfigName("fast-colcon")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/fast-colcon")
	} else {
		viper.SetConfigFile(configFile)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || (configFile == "" && errors.As(err, &notFound)) {
		return nil
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("failed to read config file").
		WithCause(err)
}

// Logs go to stderr so they never interleave with listing output.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
