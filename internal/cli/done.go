package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/project"
	"github.com/aidanlsb/tutel/internal/ui"
)

var (
	doneAll     bool
	doneNot     bool
	doneProject string
)

var doneCmd = &cobra.Command{
	Use:     "done <index...>",
	Aliases: []string{"d"},
	Short:   "Mark tasks as completed",
	Long: `Mark tasks as completed, or as open again with --not.

If any index does not exist nothing is saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := completionSelector(args, doneAll)
		if err != nil {
			return fail(err)
		}

		root, target, err := loadTarget(doneProject)
		if err != nil {
			return fail(err)
		}

		if _, err := target.ApplyCompletion(sel, !doneNot); err != nil {
			return fail(err)
		}
		if err := saveTree(root); err != nil {
			return fail(err)
		}

		verb := "completed"
		if doneNot {
			verb = "reopened"
		}
		return reportTarget(target, ui.Successf("Marked %s %s", describeSelection(sel), verb))
	},
}

func completionSelector(args []string, all bool) (project.Selector, error) {
	switch {
	case all && len(args) > 0:
		return project.Selector{}, fmt.Errorf("%w: pass either indices or --all", errInvalidInput)
	case all:
		return project.Selector{Kind: project.All}, nil
	case len(args) == 0:
		return project.Selector{}, fmt.Errorf("%w: no task indices given", errInvalidInput)
	}
	indices, err := parseIndices(args)
	if err != nil {
		return project.Selector{}, err
	}
	return project.ByIndex(indices...), nil
}

func describeSelection(sel project.Selector) string {
	switch sel.Kind {
	case project.All:
		return "all tasks"
	case project.Completed:
		return "completed tasks"
	}
	return ui.Count(len(sel.Indices), "task", "tasks")
}

func init() {
	doneCmd.Flags().BoolVarP(&doneAll, "all", "a", false, "Apply to every task")
	doneCmd.Flags().BoolVarP(&doneNot, "not", "n", false, "Mark as open instead")
	addProjectFlag(doneCmd.Flags(), &doneProject)
	rootCmd.AddCommand(doneCmd)
}
