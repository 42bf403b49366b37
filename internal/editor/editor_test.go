package editor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("editor scripts need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-editor.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEditReturnsSavedContent(t *testing.T) {
	script := writeScript(t, `printf 'buy oat milk\n\n' > "$1"`)

	got, err := Edit(context.Background(), script, "buy milk")
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if got != "buy oat milk" {
		t.Fatalf("Edit() = %q, want %q", got, "buy oat milk")
	}
}

func TestEditKeepsInitialWhenUntouched(t *testing.T) {
	script := writeScript(t, `exit 0`)

	got, err := Edit(context.Background(), "sh "+script, "unchanged")
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if got != "unchanged" {
		t.Fatalf("Edit() = %q, want %q", got, "unchanged")
	}
}

func TestEditReportsEditorFailure(t *testing.T) {
	script := writeScript(t, `exit 3`)

	if _, err := Edit(context.Background(), script, "x"); !errors.Is(err, ErrFailed) {
		t.Fatalf("expected ErrFailed, got %v", err)
	}
}

func TestEditWithoutEditor(t *testing.T) {
	if _, err := Edit(context.Background(), "  ", "x"); !errors.Is(err, ErrNoEditor) {
		t.Fatalf("expected ErrNoEditor, got %v", err)
	}
}

func TestQuote(t *testing.T) {
	if got := Quote("it's"); got != `'it'\''s'` {
		t.Fatalf("Quote() = %q", got)
	}
}
