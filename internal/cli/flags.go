package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// A flag set on the command line wins. Otherwise the viper value is used:
// config file, then FAST_COLCON_* environment, then the bound flag default.
func resolveFlag[T any](cmd *cobra.Command, value T, key string, flagName string, lookup func(string) T) T {
	if flagChanged(cmd, flagName) {
		return value
	}
	return lookup(key)
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	return resolveFlag(cmd, value, key, flagName, viper.GetString)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	return resolveFlag(cmd, values, key, flagName, viper.GetStringSlice)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	return resolveFlag(cmd, value, key, flagName, viper.GetBool)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.InheritedFlags().Lookup(name)
	}
	return flag != nil && flag.Changed
}
