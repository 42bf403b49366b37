package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is used when the output is not a terminal or its size
// cannot be read.
const DefaultTermWidth = 120

// minMarkdownWidth keeps wrapped checklists readable in very narrow panes.
const minMarkdownWidth = 20

// Terminal is what rendering needs to know about an output file.
type Terminal struct {
	Width int
	IsTTY bool
}

// DetectTerminal inspects f, falling back to DefaultTermWidth.
func DetectTerminal(f *os.File) Terminal {
	fd := f.Fd()
	t := Terminal{Width: DefaultTermWidth, IsTTY: term.IsTerminal(fd)}
	if t.IsTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			t.Width = w
		}
	}
	return t
}

// MarkdownWidth is the wrap width for RenderMarkdown on this terminal.
func (t Terminal) MarkdownWidth() int {
	w := t.Width - MarkdownRenderMargin
	if w < minMarkdownWidth {
		return minMarkdownWidth
	}
	return w
}
