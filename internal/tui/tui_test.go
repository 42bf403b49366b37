package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aidanlsb/tutel/internal/project"
)

func sampleRoot() *project.Node {
	root := project.New("/tmp/root", "root", false)
	root.Data.Add("first", false)
	root.Data.Add("second", false)
	child := project.New("/tmp/root/c", "child", true)
	child.Data.Add("inner", false)
	root.Attach(child)
	return root
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func TestCursorStartsOnFirstTask(t *testing.T) {
	m := New(sampleRoot())
	if m.rows[m.cursor].header {
		t.Fatal("cursor should not start on a headline")
	}
	if m.rows[m.cursor].index != 0 {
		t.Fatalf("cursor on index %d, want 0", m.rows[m.cursor].index)
	}
}

func TestToggleAcrossChildren(t *testing.T) {
	root := sampleRoot()
	m := New(root)

	// first -> second -> (skip child headline) -> inner
	send(m, "x", "j", "down", " ")

	if !root.Data.Tasks[0].Completed {
		t.Error("first task should be toggled")
	}
	if root.Data.Tasks[1].Completed {
		t.Error("second task should be untouched")
	}
	if !root.Children[0].Data.Tasks[0].Completed {
		t.Error("child task should be toggled")
	}
	if !m.Changed() {
		t.Error("model should report a change")
	}
}

func TestCursorStopsAtEdges(t *testing.T) {
	m := New(sampleRoot())
	send(m, "k", "k")
	if m.rows[m.cursor].header || m.rows[m.cursor].index != 0 {
		t.Fatalf("cursor moved past the first task: %+v", m.rows[m.cursor])
	}
	send(m, "j", "j", "j", "j", "j")
	last := len(m.rows) - 1
	if m.cursor != last {
		t.Fatalf("cursor = %d, want %d", m.cursor, last)
	}
}

func TestQuitResults(t *testing.T) {
	m := New(sampleRoot())
	if cmd := send(m, "q"); cmd == nil {
		t.Fatal("q should quit")
	}
	if m.Result() != Saved {
		t.Fatalf("q should save, got %v", m.Result())
	}

	m = New(sampleRoot())
	send(m, "x")
	if cmd := send(m, "esc"); cmd == nil {
		t.Fatal("esc should quit")
	}
	if m.Result() != Aborted {
		t.Fatalf("esc should abort, got %v", m.Result())
	}
}

func TestViewListsEverything(t *testing.T) {
	out := New(sampleRoot()).View()
	for _, want := range []string{"root", "child", "000) ", "first", "inner", "q save"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestViewScrollsWithCursor(t *testing.T) {
	root := project.New("/tmp/root", "root", false)
	for i := 0; i < 10; i++ {
		root.Data.Add(fmt.Sprintf("task %d", i), false)
	}
	m := New(root)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 5})

	out := m.View()
	if !strings.Contains(out, "task 1") || strings.Contains(out, "task 2") {
		t.Fatalf("expected the headline and two tasks only:\n%s", out)
	}

	send(m, "G")
	out = m.View()
	if !strings.Contains(out, "task 9") || strings.Contains(out, "task 6") {
		t.Fatalf("expected the window to follow the cursor to the end:\n%s", out)
	}

	send(m, "g")
	out = m.View()
	if !strings.Contains(out, "root") || !strings.Contains(out, "task 0") {
		t.Fatalf("expected the headline back at the top:\n%s", out)
	}
}
