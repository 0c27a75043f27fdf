package cli

import "strings"

// multiValueFlags take every following non-flag argument as a value, the way
// colcon accepts `--paths src/*` after shell expansion.
var multiValueFlags = map[string]struct{}{
	"--paths":      {},
	"--base-paths": {},
}

// expandMultiValueFlags rewrites `--paths a b` into `--paths a --paths b` so
// cobra's slice flags see each value. Everything after `--` is left alone.
func expandMultiValueFlags(args []string) []string {
	result := make([]string, 0, len(args))
	current := ""
	for i, arg := range args {
		if arg == "--" {
			return append(result, args[i:]...)
		}
		if strings.HasPrefix(arg, "-") {
			current = ""
			if _, ok := multiValueFlags[arg]; ok {
				current = arg
				continue
			}
			result = append(result, arg)
			continue
		}
		if current != "" {
			result = append(result, current, arg)
			continue
		}
		result = append(result, arg)
	}
	return result
}
