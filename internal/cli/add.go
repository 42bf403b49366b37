package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/dates"
	"github.com/aidanlsb/tutel/internal/ui"
)

var (
	addCompleted bool
	addDue       string
	addProject   string
)

var addCmd = &cobra.Command{
	Use:     "add <description...>",
	Aliases: []string{"a"},
	Short:   "Add a task",
	Example: `  tutel add buy milk
  tutel add -p back write the migration --due friday`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc := strings.TrimSpace(strings.Join(args, " "))
		if desc == "" {
			return fail(fmt.Errorf("%w: description cannot be empty", errInvalidInput))
		}

		due := ""
		if addDue != "" {
			var err error
			due, err = dates.ParseDueArg(addDue, time.Now())
			if err != nil {
				return fail(fmt.Errorf("%w: %v", errInvalidInput, err))
			}
		}

		root, target, err := loadTarget(addProject)
		if err != nil {
			return fail(err)
		}

		task, err := target.Data.Add(desc, addCompleted)
		if err != nil {
			return fail(err)
		}
		task.Due = due
		index := task.Index

		if err := saveTree(root); err != nil {
			return fail(err)
		}
		return reportTarget(target, ui.Successf("Added task %03d to %s", index, target.Data.Name))
	},
}

func init() {
	addCmd.Flags().BoolVarP(&addCompleted, "completed", "c", false, "Add the task as already completed")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD, today, tomorrow or a weekday)")
	addProjectFlag(addCmd.Flags(), &addProject)
	rootCmd.AddCommand(addCmd)
}
