package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/export"
	"github.com/aidanlsb/tutel/internal/project"
	"github.com/aidanlsb/tutel/internal/ui"
)

var (
	showMarkdown bool
	showOpenOnly bool
)

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"ls"},
	Short:   "Print the current project tree",
	Args:    cobra.NoArgs,
	RunE:    runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	root, _, err := loadTree()
	if err != nil {
		return fail(err)
	}

	if isJSONOutput() {
		outputSuccess(export.View(root), &Meta{Count: root.Len()})
		return nil
	}

	if showMarkdown {
		width := ui.DetectTerminal(os.Stdout).MarkdownWidth()
		rendered, err := ui.RenderMarkdown(export.Markdown(root), width)
		if err != nil {
			return fail(fmt.Errorf("failed to render markdown: %w", err))
		}
		fmt.Print(rendered)
		return nil
	}

	return printTree(root)
}

func printTree(root *project.Node) error {
	return ui.RenderTree(os.Stdout, root, ui.TreeOptions{HideCompleted: showOpenOnly})
}

func init() {
	showCmd.Flags().BoolVar(&showMarkdown, "markdown", false, "Render the tree as markdown")
	showCmd.Flags().BoolVar(&showOpenOnly, "open", false, "Hide completed tasks")
	rootCmd.Flags().BoolVar(&showOpenOnly, "open", false, "Hide completed tasks")
	rootCmd.AddCommand(showCmd)
}
