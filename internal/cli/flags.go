package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// addProjectFlag binds the shared -p/--project flag that picks a list by
// name prefix.
func addProjectFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVarP(target, "project", "p", "", "Act on the first list whose name starts with this prefix")
}

// parseIndices converts positional task indices.
func parseIndices(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q is not a task index", errInvalidInput, arg)
		}
		out = append(out, n)
	}
	return out, nil
}
