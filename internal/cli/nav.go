package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/nav"
	"github.com/aidanlsb/tutel/internal/ui"
)

var navCmd = &cobra.Command{
	Use:   "nav <name>",
	Short: "Print the directory saved under a name",
	Long: `Print the directory saved under a name in the nav database.

Entries whose directory no longer holds a list are removed on lookup. Use
'tutel shell-init' for a helper that changes into the directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withNav(func(db *nav.DB) error {
			path, err := db.Lookup(args[0])
			if err != nil {
				return fail(err)
			}
			if isJSONOutput() {
				outputSuccess(map[string]string{"name": args[0], "path": path}, nil)
				return nil
			}
			fmt.Println(path)
			return nil
		})
	},
}

var navAddCmd = &cobra.Command{
	Use:   "add <name> [dir]",
	Short: "Save a directory under a name",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := startDir()
		if err != nil {
			return fail(err)
		}
		if len(args) == 2 {
			if filepath.IsAbs(args[1]) {
				dir = args[1]
			} else {
				dir = filepath.Join(dir, args[1])
			}
		}
		return withNav(func(db *nav.DB) error {
			if err := db.Add(args[0], dir); err != nil {
				return fail(err)
			}
			if isJSONOutput() {
				outputSuccess(map[string]string{"name": args[0], "path": dir}, nil)
				return nil
			}
			fmt.Println(ui.Successf("Saved %s as %s", ui.FilePath(dir), args[0]))
			return nil
		})
	},
}

var navListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withNav(func(db *nav.DB) error {
			entries, err := db.List()
			if err != nil {
				return fail(err)
			}
			if isJSONOutput() {
				out := make([]map[string]string, 0, len(entries))
				for _, e := range entries {
					out = append(out, map[string]string{"name": e.Name, "path": e.Path})
				}
				outputSuccess(out, &Meta{Count: len(out)})
				return nil
			}
			if len(entries) == 0 {
				fmt.Println(ui.Hint("No saved projects. Run 'tutel nav add <name>' in a project directory."))
				return nil
			}
			width := 0
			for _, e := range entries {
				width = max(width, len(e.Name))
			}
			for _, e := range entries {
				fmt.Printf("%-*s  %s\n", width, e.Name, ui.FilePath(e.Path))
			}
			return nil
		})
	},
}

var navRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Forget a saved name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withNav(func(db *nav.DB) error {
			if err := db.Remove(args[0]); err != nil {
				return fail(err)
			}
			if isJSONOutput() {
				outputSuccess(map[string]string{"removed": args[0]}, nil)
				return nil
			}
			fmt.Println(ui.Successf("Removed %s", args[0]))
			return nil
		})
	},
}

func withNav(fn func(db *nav.DB) error) error {
	path := getConfig().NavDatabasePath(resolvedConfigPath)
	db, err := nav.Open(path)
	if err != nil {
		return fail(err)
	}
	defer db.Close()
	getLogger().Debug("opened nav database", "path", path)
	return fn(db)
}

func init() {
	navCmd.AddCommand(navAddCmd, navListCmd, navRmCmd)
	rootCmd.AddCommand(navCmd)
}
