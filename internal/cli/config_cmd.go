package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/config"
	"github.com/aidanlsb/tutel/internal/logging"
	"github.com/aidanlsb/tutel/internal/ui"
)

// configKeys maps settable keys to their accessors.
var configKeys = map[string]func(c *config.Config) *string{
	"editor":       func(c *config.Config) *string { return &c.Editor },
	"nav_database": func(c *config.Config) *string { return &c.NavDatabase },
	"log_level":    func(c *config.Config) *string { return &c.LogLevel },
	"ui.accent":    func(c *config.Config) *string { return &c.UI.Accent },
}

func configKeyNames() []string {
	names := make([]string, 0, len(configKeys))
	for k := range configKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the global config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		values := map[string]string{"path": resolvedConfigPath}
		for _, key := range configKeyNames() {
			values[key] = *configKeys[key](c)
		}
		values["nav_database_path"] = c.NavDatabasePath(resolvedConfigPath)

		if isJSONOutput() {
			outputSuccess(values, nil)
			return nil
		}
		fmt.Printf("%s %s\n", ui.Hint("config:"), ui.FilePath(resolvedConfigPath))
		for _, key := range configKeyNames() {
			fmt.Printf("%s = %q\n", key, values[key])
		}
		fmt.Printf("%s %s\n", ui.Hint("nav database:"), ui.FilePath(values["nav_database_path"]))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value (empty value removes it)",
	Long:  "Set a config value. Keys: " + strings.Join(configKeyNames(), ", ") + ".",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], strings.TrimSpace(args[1])
		field, ok := configKeys[key]
		if !ok {
			return fail(fmt.Errorf("%w: unknown config key %q (keys: %s)", errInvalidInput, key, strings.Join(configKeyNames(), ", ")))
		}
		if key == "log_level" && value != "" {
			if _, err := logging.ParseLevel(value); err != nil {
				return fail(fmt.Errorf("%w: %v", errInvalidInput, err))
			}
		}

		c := getConfig()
		*field(c) = value
		path := config.ResolvePath(resolvedConfigPath)
		if err := config.SaveTo(path, c); err != nil {
			return fail(fmt.Errorf("%w: %w", errSaveFailed, err))
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"key": key, "value": value, "path": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Set %s in %s", key, ui.FilePath(path)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
