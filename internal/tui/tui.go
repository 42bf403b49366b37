// Package tui is an interactive checklist over a resolved project tree.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aidanlsb/tutel/internal/project"
	"github.com/aidanlsb/tutel/internal/ui"
)

// Result is what the session ended with.
type Result int

const (
	// Aborted means the user quit without saving.
	Aborted Result = iota
	// Saved means the user asked to keep their changes.
	Saved
)

type row struct {
	node  *project.Node
	index int
	depth int
	// header rows carry the list headline instead of a task.
	header bool
}

// Model is the bubbletea model for `tutel tui`.
type Model struct {
	root    *project.Node
	rows    []row
	cursor  int
	changed bool
	result  Result
	now     time.Time
	// height is the terminal height, 0 until the first WindowSizeMsg.
	height int
	// offset is the first row drawn when the tree is taller than height.
	offset int
}

// New builds a model over root. The cursor starts on the first task.
func New(root *project.Node) *Model {
	m := &Model{root: root, now: time.Now()}
	m.rebuild()
	for i, r := range m.rows {
		if !r.header {
			m.cursor = i
			break
		}
	}
	return m
}

func (m *Model) rebuild() {
	m.rows = m.rows[:0]
	var add func(n *project.Node, depth int)
	add = func(n *project.Node, depth int) {
		m.rows = append(m.rows, row{node: n, depth: depth, header: true})
		for _, t := range n.Data.Tasks {
			m.rows = append(m.rows, row{node: n, index: t.Index, depth: depth})
		}
		for _, c := range n.Children {
			add(c, depth+1)
		}
	}
	add(m.root, 0)
}

// Changed reports whether any task was toggled.
func (m *Model) Changed() bool { return m.changed }

// Result reports how the session ended.
func (m *Model) Result() Result { return m.result }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch message := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = message.Height
		m.scroll()
		return m, nil
	case tea.KeyMsg:
		switch message.String() {
		case "ctrl+c", "esc":
			m.result = Aborted
			return m, tea.Quit
		case "q", "enter":
			m.result = Saved
			return m, tea.Quit
		case "j", "down":
			m.move(1)
		case "k", "up":
			m.move(-1)
		case "g", "home":
			m.cursor = 0
			m.move(0)
		case "G", "end":
			m.cursor = len(m.rows) - 1
			m.move(0)
		case "x", " ":
			m.toggle()
		}
		m.scroll()
	}
	return m, nil
}

// visibleRows is how many rows fit above the key hint.
func (m *Model) visibleRows() int {
	if m.height <= 0 {
		return len(m.rows)
	}
	n := m.height - 2
	if n < 1 {
		n = 1
	}
	return n
}

// scroll keeps the cursor inside the drawn window. Moving up onto a task
// also reveals its headline when that is the row just above.
func (m *Model) scroll() {
	n := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
		if m.offset > 0 && m.rows[m.offset-1].header {
			m.offset--
		}
	}
	if m.cursor >= m.offset+n {
		m.offset = m.cursor - n + 1
	}
	if last := len(m.rows) - n; m.offset > last {
		m.offset = last
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// move steps the cursor by delta, skipping headline rows.
func (m *Model) move(delta int) {
	if len(m.rows) == 0 {
		return
	}
	step := delta
	if step == 0 {
		step = 1
	}
	for i := m.cursor + delta; i >= 0 && i < len(m.rows); i += step {
		if !m.rows[i].header {
			m.cursor = i
			return
		}
	}
	if delta == 0 {
		for i := m.cursor; i >= 0; i-- {
			if !m.rows[i].header {
				m.cursor = i
				return
			}
		}
	}
}

func (m *Model) toggle() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	r := m.rows[m.cursor]
	if r.header {
		return
	}
	t, err := r.node.Data.Task(r.index)
	if err != nil {
		return
	}
	t.Completed = !t.Completed
	m.changed = true
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	end := m.offset + m.visibleRows()
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		pointer := "  "
		if i == m.cursor {
			pointer = ui.Accent.Render("> ")
		}
		pad := strings.Repeat("  ", r.depth)
		if r.header {
			fmt.Fprintf(&b, "  %s%s\n", pad, ui.Headline(r.node.Data))
			continue
		}
		t, err := r.node.Data.Task(r.index)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s%s%s\n", pointer, pad, ui.TaskLine(*t, m.now))
	}
	b.WriteString("\n")
	b.WriteString(ui.Hint("j/k move · x toggle · q save and quit · esc discard"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the program on the terminal and returns the final model.
func Run(root *project.Node) (*Model, error) {
	m := New(root)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("tui failed: %w", err)
	}
	if fm, ok := final.(*Model); ok {
		return fm, nil
	}
	return m, nil
}
