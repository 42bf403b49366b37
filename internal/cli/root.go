// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/tutel/internal/config"
	"github.com/aidanlsb/tutel/internal/logging"
	"github.com/aidanlsb/tutel/internal/project"
	"github.com/aidanlsb/tutel/internal/ui"
)

var (
	// Global flags
	dirFlag    string
	configPath string
	verbose    bool

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
	logger             *log.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tutel",
	Short: "tutel - task lists that live next to your work",
	Long: `tutel keeps a small task list in a .tutel.toml file per directory.

Commands act on the list governing the current directory: the nearest
ancestor list that is not marked as a child. Child lists below it are
shown and edited as part of the same tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version", "shell-init":
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return handleErrorMsg(ErrConfigInvalid, fmt.Sprintf("failed to load config: %v", err), "Fix or remove the config file")
		}
		ui.ConfigureTheme(cfg.UI.Accent)

		logger, err = logging.New(os.Stderr, logging.Options{Level: cfg.LogLevel, Verbose: verbose})
		if err != nil {
			return handleError(ErrConfigInvalid, err, "Set log_level to debug, info, warn or error")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd, args)
	},
}

// Execute runs the CLI. Errors already reported as JSON come back as
// ErrReported.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "C", "", "Start directory for project lookup (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log lookup details to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for scripts)")
	rootCmd.Flags().BoolVar(&showMarkdown, "markdown", false, "Render the tree as markdown")
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolvePath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}

func getConfig() *config.Config {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return cfg
}

func getLogger() *log.Logger {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return logger
}

// startDir returns the absolute lookup start: --dir or the working directory.
func startDir() (string, error) {
	dir := dirFlag
	if strings.TrimSpace(dir) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("unable to determine working directory: %w", err)
		}
		dir = wd
	}
	return filepath.Abs(dir)
}

// loadTree resolves the project tree for the start directory.
func loadTree() (*project.Node, string, error) {
	start, err := startDir()
	if err != nil {
		return nil, "", err
	}
	r := project.NewResolver()
	r.Logger = getLogger()
	root, err := r.LoadRoot(start)
	if err != nil {
		return nil, start, err
	}
	return root, start, nil
}

// loadTarget resolves the tree and the node a command acts on: the list
// named by prefix anywhere in the tree, or the list nearest to the start
// directory.
func loadTarget(prefix string) (root, target *project.Node, err error) {
	root, start, err := loadTree()
	if err != nil {
		return nil, nil, err
	}
	if prefix != "" {
		target, err = root.FindByName(prefix)
		if err != nil {
			return nil, nil, err
		}
		return root, target, nil
	}
	return root, root.Nearest(start), nil
}
