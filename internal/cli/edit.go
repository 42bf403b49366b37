package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/dates"
	"github.com/aidanlsb/tutel/internal/editor"
	"github.com/aidanlsb/tutel/internal/ui"
)

var (
	editEditor  string
	editDue     string
	editProject string
)

var editCmd = &cobra.Command{
	Use:     "edit <index> [description...]",
	Aliases: []string{"e"},
	Short:   "Change a task's description or due date",
	Long: `Change a task's description or due date.

Without a new description (and without --due) the current text is opened
in your editor. --due none clears the due date.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		indices, err := parseIndices(args[:1])
		if err != nil {
			return fail(err)
		}
		index := indices[0]
		newDesc := strings.TrimSpace(strings.Join(args[1:], " "))

		root, target, err := loadTarget(editProject)
		if err != nil {
			return fail(err)
		}
		task, err := target.Data.Task(index)
		if err != nil {
			return fail(err)
		}

		if cmd.Flags().Changed("due") {
			due, err := parseEditDue(editDue)
			if err != nil {
				return fail(err)
			}
			task.Due = due
		}

		if newDesc == "" && !cmd.Flags().Changed("due") {
			ed := editEditor
			if ed == "" {
				ed = getConfig().GetEditor()
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			newDesc, err = editor.Edit(ctx, ed, task.Desc)
			if err != nil {
				return fail(err)
			}
			if newDesc == "" {
				return fail(fmt.Errorf("%w: description cannot be empty", errInvalidInput))
			}
		}
		if newDesc != "" {
			if err := target.Data.SetDescription(index, newDesc); err != nil {
				return fail(err)
			}
		}

		if err := saveTree(root); err != nil {
			return fail(err)
		}
		return reportTarget(target, ui.Successf("Updated task %03d", index))
	},
}

func parseEditDue(arg string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "none", "clear":
		return "", nil
	}
	due, err := dates.ParseDueArg(arg, time.Now())
	if err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	return due, nil
}

func init() {
	editCmd.Flags().StringVar(&editEditor, "editor", "", "Editor command (default: config editor or $EDITOR)")
	editCmd.Flags().StringVar(&editDue, "due", "", "Set the due date, or 'none' to clear it")
	addProjectFlag(editCmd.Flags(), &editProject)
	rootCmd.AddCommand(editCmd)
}
