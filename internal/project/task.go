// Package project implements tutel's task lists: the data model, the
// .tutel.toml codec, discovery of the governing list and its children, and
// task selection across the resulting tree.
package project

// MaxIndex is the highest task index. NextIndex wraps to 0 after it.
const MaxIndex = 999

// Task is a completable item within a TaskList.
type Task struct {
	Desc      string
	Index     int
	Completed bool
	// Due is an optional YYYY-MM-DD date.
	Due string
}

// TaskList is the part of a project that is persisted to disk.
type TaskList struct {
	Name  string
	Tasks []Task
	// IsChild marks a list that is attached under an ancestor project and
	// never used as a root.
	IsChild bool
}

// NewTaskList returns an empty list.
func NewTaskList(name string, isChild bool) TaskList {
	return TaskList{Name: name, Tasks: []Task{}, IsChild: isChild}
}

// NextIndex returns the highest index in use plus one, 0 for an empty list,
// and wraps to 0 once MaxIndex is in use.
func (l *TaskList) NextIndex() int {
	if len(l.Tasks) == 0 {
		return 0
	}
	highest := 0
	for _, t := range l.Tasks {
		if t.Index > highest {
			highest = t.Index
		}
	}
	if highest >= MaxIndex {
		return 0
	}
	return highest + 1
}

// Add appends a task at NextIndex, or at the first free index after it
// when the wrap lands on an index still in use. The returned pointer is only
// valid until the list is modified again.
func (l *TaskList) Add(desc string, completed bool) (*Task, error) {
	used := make(map[int]bool, len(l.Tasks))
	for _, t := range l.Tasks {
		used[t.Index] = true
	}
	index := l.NextIndex()
	for n := 0; used[index]; n++ {
		if n > MaxIndex {
			return nil, ErrListFull
		}
		index = (index + 1) % (MaxIndex + 1)
	}
	l.Tasks = append(l.Tasks, Task{Desc: desc, Index: index, Completed: completed})
	return &l.Tasks[len(l.Tasks)-1], nil
}

// Task returns the task with the given index.
func (l *TaskList) Task(index int) (*Task, error) {
	for i := range l.Tasks {
		if l.Tasks[i].Index == index {
			return &l.Tasks[i], nil
		}
	}
	return nil, &TaskNotFoundError{Index: index}
}

// Remove deletes the task with the given index.
func (l *TaskList) Remove(index int) error {
	for i := range l.Tasks {
		if l.Tasks[i].Index == index {
			l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
			return nil
		}
	}
	return &TaskNotFoundError{Index: index}
}

// RemoveAll deletes every task.
func (l *TaskList) RemoveAll() {
	l.Tasks = l.Tasks[:0]
}

// RemoveCompleted deletes completed tasks and reports how many went.
func (l *TaskList) RemoveCompleted() int {
	kept := l.Tasks[:0]
	for _, t := range l.Tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(l.Tasks) - len(kept)
	l.Tasks = kept
	return removed
}

// MarkCompletion sets the completion state of one task. The list is left
// untouched when the index does not exist.
func (l *TaskList) MarkCompletion(index int, completed bool) error {
	t, err := l.Task(index)
	if err != nil {
		return err
	}
	t.Completed = completed
	return nil
}

// MarkCompletionAll sets the completion state of every task.
func (l *TaskList) MarkCompletionAll(completed bool) {
	for i := range l.Tasks {
		l.Tasks[i].Completed = completed
	}
}

// SetDescription replaces a task's description.
func (l *TaskList) SetDescription(index int, desc string) error {
	t, err := l.Task(index)
	if err != nil {
		return err
	}
	t.Desc = desc
	return nil
}

// Done reports whether the list has tasks and all of them are completed.
func (l *TaskList) Done() bool {
	if len(l.Tasks) == 0 {
		return false
	}
	for _, t := range l.Tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}
