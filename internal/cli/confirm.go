package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/aidanlsb/tutel/internal/ui"
)

func shouldPromptForConfirm() bool {
	if isJSONOutput() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}

func promptForConfirm(message string) bool {
	if !shouldPromptForConfirm() {
		return false
	}
	if message == "" {
		message = "Apply changes?"
	}
	fmt.Printf("%s %s ", message, ui.Hint("[y/N]"))
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// confirmDestructive returns nil when yes is set or the user agrees at the
// prompt, errConfirmRequired otherwise.
func confirmDestructive(yes bool, message string) error {
	if yes {
		return nil
	}
	if promptForConfirm(message) {
		return nil
	}
	return fmt.Errorf("%w: %s", errConfirmRequired, strings.TrimSuffix(message, "?"))
}
