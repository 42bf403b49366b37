package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/tutel/internal/atomicfile"
)

// Node is a TaskList bound to the file it was loaded from and to its
// position relative to the directory the lookup started in.
type Node struct {
	Path string
	// Steps is negative for lists above the start directory, zero at it,
	// and positive below it.
	Steps    int
	Data     TaskList
	Children []*Node
}

// New returns an unsaved node for a list stored in dir.
func New(dir, name string, isChild bool) *Node {
	return &Node{
		Path: filepath.Join(dir, FileName),
		Data: NewTaskList(name, isChild),
	}
}

// Dir returns the directory holding the node's file.
func (n *Node) Dir() string {
	return filepath.Dir(n.Path)
}

// Attach adds a child list under n and sets its steps (and those of its
// descendants) relative to n. Attaching a list that is not marked as a
// child is a programming error and panics.
func (n *Node) Attach(child *Node) {
	if child == nil {
		panic("project: Attach called with nil node")
	}
	if !child.Data.IsChild {
		panic(fmt.Sprintf("project: cannot attach %q under %q: list is not marked is_child", child.Path, n.Path))
	}
	child.shift(n.Steps + 1 - child.Steps)
	n.Children = append(n.Children, child)
}

func (n *Node) shift(delta int) {
	if delta == 0 {
		return
	}
	n.Steps += delta
	for _, c := range n.Children {
		c.shift(delta)
	}
}

// Walk calls fn for n and every descendant in pre-order. A non-nil error
// from fn stops the walk.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of nodes in the subtree rooted at n.
func (n *Node) Len() int {
	count := 0
	_ = n.Walk(func(*Node) error {
		count++
		return nil
	})
	return count
}

// Nearest returns the node whose directory is the deepest ancestor (or
// the directory itself) of dir. It falls back to n.
func (n *Node) Nearest(dir string) *Node {
	dir = filepath.Clean(dir)
	best := n
	bestLen := -1
	_ = n.Walk(func(c *Node) error {
		d := c.Dir()
		if within(d, dir) && len(d) > bestLen {
			best = c
			bestLen = len(d)
		}
		return nil
	})
	return best
}

func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Save writes n's list to its file, then saves every descendant.
func (n *Node) Save() error {
	err := atomicfile.Write(n.Path, 0, func(w io.Writer) error {
		return Encode(w, n.Data)
	})
	if err != nil {
		return fmt.Errorf("unable to write project file %s: %w", n.Path, err)
	}
	for _, c := range n.Children {
		if err := c.Save(); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes n's file. Children keep their own files.
func (n *Node) Delete() error {
	if err := os.Remove(n.Path); err != nil {
		return fmt.Errorf("unable to remove project file: %w", err)
	}
	return nil
}
