package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/tui"
	"github.com/aidanlsb/tutel/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Toggle tasks interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSONOutput() {
			return handleErrorMsg(ErrInvalidInput, "tui cannot be used with --json", "")
		}

		root, _, err := loadTree()
		if err != nil {
			return fail(err)
		}

		m, err := tui.Run(root)
		if err != nil {
			return fail(err)
		}
		if m.Result() != tui.Saved || !m.Changed() {
			fmt.Println(ui.Hint("No changes saved."))
			return nil
		}
		if err := saveTree(root); err != nil {
			return fail(err)
		}
		fmt.Println(ui.Successf("Saved %s", root.Data.Name))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
