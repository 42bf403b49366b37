// Package checklist extracts GitHub-style task list items from markdown.
package checklist

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aidanlsb/tutel/internal/dates"
)

// Item is one "- [ ]" or "- [x]" entry.
type Item struct {
	Desc    string
	Checked bool
	// Due is set when the item ends in "(due YYYY-MM-DD)".
	Due string
	// Section is the text of the closest heading above the item.
	Section string
}

var dueSuffix = regexp.MustCompile(`\s*\((?:due|overdue) (\d{4}-\d{2}-\d{2})\)$`)

// Parse returns every task list item in src in document order. Plain list
// items without a checkbox are ignored.
func Parse(src []byte) []Item {
	md := goldmark.New(goldmark.WithExtensions(extension.TaskList))
	doc := md.Parser().Parse(text.NewReader(src))

	var items []Item
	section := ""
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			section = strings.TrimSpace(inlineText(node, src))
			return ast.WalkSkipChildren, nil
		case *extast.TaskCheckBox:
			block := node.Parent()
			if block == nil {
				return ast.WalkContinue, nil
			}
			item := Item{
				Desc:    strings.TrimSpace(inlineText(block, src)),
				Checked: node.IsChecked,
				Section: section,
			}
			if m := dueSuffix.FindStringSubmatch(item.Desc); m != nil && dates.IsValidDate(m[1]) {
				item.Due = m[1]
				item.Desc = strings.TrimSpace(item.Desc[:len(item.Desc)-len(m[0])])
			}
			if item.Desc != "" {
				items = append(items, item)
			}
		}
		return ast.WalkContinue, nil
	})
	return items
}

// inlineText concatenates the text below n, turning soft line breaks into
// spaces.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		default:
			b.WriteString(inlineText(c, src))
		}
	}
	return b.String()
}
