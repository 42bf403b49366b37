package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/atomicfile"
	"github.com/aidanlsb/tutel/internal/export"
	"github.com/aidanlsb/tutel/internal/ui"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the project tree as markdown, JSON, YAML or TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, _, err := loadTree()
		if err != nil {
			return fail(err)
		}

		out, err := export.Render(root, exportFormat)
		if err != nil {
			return fail(fmt.Errorf("%w: %v", errInvalidInput, err))
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err := os.Stdout.Write(out)
			return err
		}
		if err := atomicfile.WriteFile(exportOutput, out, 0o644); err != nil {
			return fail(fmt.Errorf("%w: %w", errSaveFailed, err))
		}
		fmt.Fprintln(os.Stderr, ui.Successf("Exported %s to %s", root.Data.Name, ui.FilePath(exportOutput)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "markdown", "Output format: "+strings.Join(export.Formats, ", "))
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
