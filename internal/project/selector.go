package project

import (
	"errors"
	"strings"
)

// SelectorKind says which tasks of a node a Selector picks.
type SelectorKind int

const (
	// Indexed picks the tasks listed in Selector.Indices.
	Indexed SelectorKind = iota
	// All picks every task.
	All
	// Completed picks completed tasks. Only removal accepts it.
	Completed
)

// ErrCompletedSelector is returned when completion is toggled with a
// Completed selector.
var ErrCompletedSelector = errors.New("the completed selector can only be used to remove tasks")

// Selector describes the tasks an operation targets. A non-empty Project
// looks the node up by name prefix across the tree before selecting.
type Selector struct {
	Kind    SelectorKind
	Indices []int
	Project string
}

// ByIndex selects the given indices.
func ByIndex(indices ...int) Selector {
	return Selector{Kind: Indexed, Indices: indices}
}

// FindByName returns the first node, in pre-order, whose name starts with
// prefix.
func (n *Node) FindByName(prefix string) (*Node, error) {
	if found := n.findByName(prefix); found != nil {
		return found, nil
	}
	return nil, &ProjectNotFoundError{Prefix: prefix}
}

func (n *Node) findByName(prefix string) *Node {
	if strings.HasPrefix(n.Data.Name, prefix) {
		return n
	}
	for _, c := range n.Children {
		if found := c.findByName(prefix); found != nil {
			return found
		}
	}
	return nil
}

// TaskByName finds the node named by prefix and the task with index in it.
func (n *Node) TaskByName(prefix string, index int) (*Task, error) {
	target, err := n.FindByName(prefix)
	if err != nil {
		return nil, err
	}
	return target.Data.Task(index)
}

// Target returns the node sel applies to: the receiver, or the node found
// by sel.Project when set.
func (n *Node) Target(sel Selector) (*Node, error) {
	if sel.Project == "" {
		return n, nil
	}
	return n.FindByName(sel.Project)
}

// Select resolves sel to task pointers inside the target node. The
// pointers are valid until that node's list is modified.
func (n *Node) Select(sel Selector) ([]*Task, error) {
	target, err := n.Target(sel)
	if err != nil {
		return nil, err
	}

	tasks := target.Data.Tasks
	var out []*Task
	switch sel.Kind {
	case All:
		for i := range tasks {
			out = append(out, &tasks[i])
		}
	case Completed:
		for i := range tasks {
			if tasks[i].Completed {
				out = append(out, &tasks[i])
			}
		}
	default:
		for _, idx := range sel.Indices {
			t, err := target.Data.Task(idx)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
	}
	return out, nil
}

// ApplyCompletion marks the selected tasks. For Indexed selectors the
// first missing index stops the batch; earlier indices stay marked.
func (n *Node) ApplyCompletion(sel Selector, completed bool) (*Node, error) {
	target, err := n.Target(sel)
	if err != nil {
		return nil, err
	}

	switch sel.Kind {
	case All:
		target.Data.MarkCompletionAll(completed)
	case Completed:
		return nil, ErrCompletedSelector
	default:
		for _, idx := range sel.Indices {
			if err := target.Data.MarkCompletion(idx, completed); err != nil {
				return target, err
			}
		}
	}
	return target, nil
}

// ApplyRemove deletes the selected tasks with the same batch rule as
// ApplyCompletion.
func (n *Node) ApplyRemove(sel Selector) (*Node, error) {
	target, err := n.Target(sel)
	if err != nil {
		return nil, err
	}

	switch sel.Kind {
	case All:
		target.Data.RemoveAll()
	case Completed:
		target.Data.RemoveCompleted()
	default:
		for _, idx := range sel.Indices {
			if err := target.Data.Remove(idx); err != nil {
				return target, err
			}
		}
	}
	return target, nil
}
