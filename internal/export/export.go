// Package export serialises a project tree for use outside tutel.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/tutel/internal/project"
)

// Formats lists the supported --format values.
var Formats = []string{"markdown", "json", "yaml", "toml"}

// Project is the exported view of one list and its children.
type Project struct {
	Name     string    `json:"name" yaml:"name" toml:"name"`
	Path     string    `json:"path" yaml:"path" toml:"path"`
	IsChild  bool      `json:"is_child" yaml:"is_child" toml:"is_child"`
	Done     bool      `json:"done" yaml:"done" toml:"done"`
	Tasks    []Task    `json:"tasks" yaml:"tasks" toml:"tasks"`
	Children []Project `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Task is the exported view of a task.
type Task struct {
	Index     int    `json:"index" yaml:"index" toml:"index"`
	Desc      string `json:"desc" yaml:"desc" toml:"desc"`
	Completed bool   `json:"completed" yaml:"completed" toml:"completed"`
	Due       string `json:"due,omitempty" yaml:"due,omitempty" toml:"due,omitempty"`
}

// View converts a node and its descendants.
func View(n *project.Node) Project {
	p := Project{
		Name:    n.Data.Name,
		Path:    n.Path,
		IsChild: n.Data.IsChild,
		Done:    n.Data.Done(),
		Tasks:   make([]Task, 0, len(n.Data.Tasks)),
	}
	for _, t := range n.Data.Tasks {
		p.Tasks = append(p.Tasks, Task{Index: t.Index, Desc: t.Desc, Completed: t.Completed, Due: t.Due})
	}
	for _, c := range n.Children {
		p.Children = append(p.Children, View(c))
	}
	return p
}

// Render serialises n in the named format.
func Render(n *project.Node, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "markdown", "md":
		return []byte(Markdown(n)), nil
	case "json":
		return JSON(n)
	case "yaml", "yml":
		return YAML(n)
	case "toml":
		return TOML(n)
	default:
		return nil, fmt.Errorf("unknown export format %q (supported: %s)", format, strings.Join(Formats, ", "))
	}
}

// JSON renders the tree as indented JSON.
func JSON(n *project.Node) ([]byte, error) {
	out, err := json.MarshalIndent(View(n), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return append(out, '\n'), nil
}

// YAML renders the tree as YAML.
func YAML(n *project.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(View(n)); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// TOML renders the tree as one TOML document with nested children tables.
func TOML(n *project.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(View(n)); err != nil {
		return nil, fmt.Errorf("failed to encode toml: %w", err)
	}
	return buf.Bytes(), nil
}

// Markdown renders each list as a heading followed by a task list. Child
// lists get one heading level more than their parent, up to six.
func Markdown(n *project.Node) string {
	var b strings.Builder
	writeMarkdown(&b, n, 1)
	return b.String()
}

func writeMarkdown(b *strings.Builder, n *project.Node, level int) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	fmt.Fprintf(b, "%s %s\n\n", strings.Repeat("#", min(level, 6)), n.Data.Name)
	if len(n.Data.Tasks) == 0 {
		b.WriteString("_No tasks._\n")
	}
	for _, t := range n.Data.Tasks {
		box := " "
		if t.Completed {
			box = "x"
		}
		fmt.Fprintf(b, "- [%s] %s", box, t.Desc)
		if t.Due != "" {
			fmt.Fprintf(b, " (due %s)", t.Due)
		}
		b.WriteByte('\n')
	}
	for _, c := range n.Children {
		writeMarkdown(b, c, level+1)
	}
}
