package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/checklist"
	"github.com/aidanlsb/tutel/internal/ui"
)

var (
	importProject  string
	importSkipDone bool
)

var importCmd = &cobra.Command{
	Use:   "import <file.md>",
	Short: "Add the checklist items of a markdown file as tasks",
	Long: `Add every "- [ ]" and "- [x]" item of a markdown file as a task.

Checked items are added as completed. A trailing "(due YYYY-MM-DD)" becomes
the task's due date.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fail(fmt.Errorf("unable to read %s: %w", args[0], err))
		}

		items := checklist.Parse(src)
		if len(items) == 0 {
			return fail(fmt.Errorf("%w: no checklist items in %s", errInvalidInput, args[0]))
		}

		root, target, err := loadTarget(importProject)
		if err != nil {
			return fail(err)
		}

		added := 0
		for _, item := range items {
			if importSkipDone && item.Checked {
				continue
			}
			task, err := target.Data.Add(item.Desc, item.Checked)
			if err != nil {
				return fail(err)
			}
			task.Due = item.Due
			added++
		}

		if err := saveTree(root); err != nil {
			return fail(err)
		}
		return reportTarget(target, ui.Successf("Imported %s into %s", ui.Count(added, "task", "tasks"), target.Data.Name))
	},
}

func init() {
	importCmd.Flags().BoolVar(&importSkipDone, "skip-done", false, "Ignore checked items")
	addProjectFlag(importCmd.Flags(), &importProject)
	rootCmd.AddCommand(importCmd)
}
