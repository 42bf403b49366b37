package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/project"
	"github.com/aidanlsb/tutel/internal/ui"
)

var (
	rmAll     bool
	rmCleanup bool
	rmList    bool
	rmYes     bool
	rmProject string
)

var rmCmd = &cobra.Command{
	Use:   "rm <index...>",
	Short: "Remove tasks or the list itself",
	Long: `Remove tasks by index, every task (--all), completed tasks (--cleanup),
or delete the list file itself (--list). --all and --list ask for
confirmation unless --yes is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := removalSelector(args)
		if err != nil {
			return fail(err)
		}

		root, target, err := loadTarget(rmProject)
		if err != nil {
			return fail(err)
		}

		if rmList {
			return removeList(target)
		}

		if sel.Kind == project.All {
			if err := confirmDestructive(rmYes, fmt.Sprintf("Remove all %d tasks from %s?", len(target.Data.Tasks), target.Data.Name)); err != nil {
				return fail(err)
			}
		}

		before := len(target.Data.Tasks)
		if _, err := target.ApplyRemove(sel); err != nil {
			return fail(err)
		}
		if err := saveTree(root); err != nil {
			return fail(err)
		}

		removed := before - len(target.Data.Tasks)
		return reportTarget(target, ui.Successf("Removed %s from %s", ui.Count(removed, "task", "tasks"), target.Data.Name))
	},
}

func removalSelector(args []string) (project.Selector, error) {
	modes := 0
	for _, set := range []bool{rmAll, rmCleanup, rmList, len(args) > 0} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		return project.Selector{}, fmt.Errorf("%w: pass exactly one of indices, --all, --cleanup or --list", errInvalidInput)
	}

	switch {
	case rmAll:
		return project.Selector{Kind: project.All}, nil
	case rmCleanup:
		return project.Selector{Kind: project.Completed}, nil
	case rmList:
		return project.Selector{}, nil
	}
	indices, err := parseIndices(args)
	if err != nil {
		return project.Selector{}, err
	}
	return project.ByIndex(indices...), nil
}

func removeList(target *project.Node) error {
	if err := confirmDestructive(rmYes, fmt.Sprintf("Delete the list %s at %s?", target.Data.Name, target.Path)); err != nil {
		return fail(err)
	}
	if err := target.Delete(); err != nil {
		return fail(err)
	}
	if isJSONOutput() {
		outputSuccess(map[string]string{"deleted": target.Path}, nil)
		return nil
	}
	fmt.Println(ui.Successf("Deleted %s", ui.FilePath(target.Path)))
	return nil
}

func init() {
	rmCmd.Flags().BoolVarP(&rmAll, "all", "a", false, "Remove every task")
	rmCmd.Flags().BoolVar(&rmCleanup, "cleanup", false, "Remove completed tasks")
	rmCmd.Flags().BoolVar(&rmList, "list", false, "Delete the list file")
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Do not ask for confirmation")
	addProjectFlag(rmCmd.Flags(), &rmProject)
	rootCmd.AddCommand(rmCmd)
}
