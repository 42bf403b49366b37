package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aidanlsb/tutel/internal/dates"
	"github.com/aidanlsb/tutel/internal/project"
)

// TreeOptions controls RenderTree.
type TreeOptions struct {
	// Now decides which due dates are overdue. Zero means time.Now.
	Now time.Time
	// Indent is the prefix added per tree level. Empty means two spaces.
	Indent string
	// HideCompleted omits completed tasks from the listing.
	HideCompleted bool
}

// Headline returns the marker and name line of a list.
func Headline(l project.TaskList) string {
	marker := "[X]"
	switch {
	case len(l.Tasks) == 0:
		marker = "[empty]"
	case l.Done():
		marker = "[✓]"
	}
	return AccentBold.Render(marker + l.Name)
}

// TaskLine renders one task as "NNN) [✓]desc" with an optional due date.
func TaskLine(t project.Task, now time.Time) string {
	marker := Pending.Render("[X]")
	if t.Completed {
		marker = Done.Render("[✓]")
	}
	line := fmt.Sprintf("%03d) %s%s", t.Index, marker, t.Desc)
	if t.Due == "" {
		return line
	}
	due := Muted.Render("(due " + t.Due + ")")
	if !t.Completed && dates.Overdue(t.Due, now) {
		due = Pending.Render("(overdue " + t.Due + ")")
	}
	return line + " " + due
}

// RenderTree writes root and its children, one block per list, each level
// indented below its parent.
func RenderTree(w io.Writer, root *project.Node, opts TreeOptions) error {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	var b strings.Builder
	renderNode(&b, root, 0, opts)
	_, err := io.WriteString(w, b.String())
	return err
}

func renderNode(b *strings.Builder, n *project.Node, depth int, opts TreeOptions) {
	pad := strings.Repeat(opts.Indent, depth)
	b.WriteString(pad)
	b.WriteString(Headline(n.Data))
	b.WriteByte('\n')
	for _, t := range n.Data.Tasks {
		if opts.HideCompleted && t.Completed {
			continue
		}
		b.WriteString(pad)
		b.WriteString(TaskLine(t, opts.Now))
		b.WriteByte('\n')
	}
	for _, c := range n.Children {
		renderNode(b, c, depth+1, opts)
	}
}
