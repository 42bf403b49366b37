// Package editor runs the user's editor on a scratch file and returns what
// they saved.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var (
	// ErrNoEditor is returned when neither the config nor $EDITOR names one.
	ErrNoEditor = errors.New("no editor configured (set 'editor' in ~/.config/tutel/config.toml or $EDITOR)")
	// ErrFailed wraps a non-zero exit or launch failure of the editor.
	ErrFailed = errors.New("editor failed")
)

// Edit writes initial to a temporary file, runs editor on it, waits for the
// editor to exit, and returns the file's new content with surrounding
// whitespace trimmed.
//
// An editor containing spaces (e.g. "code --wait") is run through sh -c.
func Edit(ctx context.Context, editor, initial string) (string, error) {
	editor = strings.TrimSpace(editor)
	if editor == "" {
		return "", ErrNoEditor
	}

	f, err := os.CreateTemp("", "tutel-edit-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(initial + "\n"); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write scratch file: %w", err)
	}

	cmd := command(ctx, editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFailed, editor, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read scratch file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func command(ctx context.Context, editor, path string) *exec.Cmd {
	if strings.Contains(editor, " ") {
		return exec.CommandContext(ctx, "sh", "-c", editor+" "+Quote(path))
	}
	return exec.CommandContext(ctx, editor, path)
}

// Quote wraps s in single quotes, escaping any internal single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
