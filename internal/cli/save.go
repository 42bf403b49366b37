package cli

import (
	"errors"
	"fmt"

	"github.com/aidanlsb/tutel/internal/export"
	"github.com/aidanlsb/tutel/internal/project"
)

var errSaveFailed = errors.New("save failed")

// saveTree writes every list in the tree back to disk.
func saveTree(root *project.Node) error {
	if err := root.Save(); err != nil {
		return fmt.Errorf("%w: %w", errSaveFailed, err)
	}
	getLogger().Debug("saved project tree", "root", root.Path, "lists", root.Len())
	return nil
}

// reportTarget prints the list a command changed: its tree in text mode, its
// exported view in JSON mode.
func reportTarget(target *project.Node, message string) error {
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"message": message,
			"project": export.View(target),
		}, nil)
		return nil
	}
	if message != "" {
		fmt.Println(message)
	}
	return printTree(target)
}
