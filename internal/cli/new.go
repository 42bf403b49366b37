package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/nav"
	"github.com/aidanlsb/tutel/internal/project"
	"github.com/aidanlsb/tutel/internal/ui"
)

var (
	newForce bool
	newChild bool
	newNoNav bool
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a task list in the current directory",
	Long: `Create a task list in the current directory.

The name defaults to a slug of the directory name. Root lists are also
saved in the nav database so 'tutel nav <name>' can find them; child lists
(--child) are attached to the list above them instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := startDir()
		if err != nil {
			return fail(err)
		}

		name := ""
		if len(args) > 0 {
			name = strings.TrimSpace(args[0])
		}
		node, err := createProject(dir, name, newChild, newForce)
		if err != nil {
			return fail(err)
		}

		var warnings []Warning
		if !newChild && !newNoNav {
			if err := registerNav(node.Data.Name, dir); err != nil {
				getLogger().Warn("project not added to nav", "name", node.Data.Name, "err", err)
				warnings = append(warnings, Warning{Code: "NAV_NOT_UPDATED", Message: err.Error(), Path: dir})
			}
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{
				"name":     node.Data.Name,
				"path":     node.Path,
				"is_child": node.Data.IsChild,
			}, warnings, nil)
			return nil
		}
		fmt.Println(ui.Successf("Created %s in %s", node.Data.Name, ui.FilePath(node.Dir())))
		return nil
	},
}

// defaultProjectName derives a list name from its directory.
func defaultProjectName(dir string) string {
	name := slug.Make(filepath.Base(dir))
	if name == "" {
		return "tasks"
	}
	return name
}

// createProject writes an empty list to dir. An existing list is only
// replaced when force is set.
func createProject(dir, name string, isChild, force bool) (*project.Node, error) {
	if _, ok := project.HasProject(dir); ok && !force {
		return nil, fmt.Errorf("%w: %s", errProjectExists, dir)
	}
	if name == "" {
		name = defaultProjectName(dir)
	}
	node := project.New(dir, name, isChild)
	if err := node.Save(); err != nil {
		return nil, err
	}
	return node, nil
}

func registerNav(name, dir string) error {
	db, err := nav.Open(getConfig().NavDatabasePath(resolvedConfigPath))
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Add(name, dir)
}

func init() {
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "Overwrite an existing list")
	newCmd.Flags().BoolVar(&newChild, "child", false, "Mark the list as a child of the list above it")
	newCmd.Flags().BoolVar(&newNoNav, "no-nav", false, "Do not add the list to the nav database")
	rootCmd.AddCommand(newCmd)
}
