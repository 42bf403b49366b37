package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/nav"
)

var shellInitCmd = &cobra.Command{
	Use:       "shell-init <shell>",
	Short:     "Print the tn helper for your shell",
	Long:      "Print a `tn <name>` function that changes into a saved project.\n\nAdd `eval \"$(tutel shell-init bash)\"` to your shell startup file.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: nav.Shells(),
	RunE: func(cmd *cobra.Command, args []string) error {
		snippet, err := nav.ShellInit(args[0])
		if err != nil {
			return fail(fmt.Errorf("%w: %v (supported: %s)", errInvalidInput, err, strings.Join(nav.Shells(), ", ")))
		}
		fmt.Print(snippet)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shellInitCmd)
}
