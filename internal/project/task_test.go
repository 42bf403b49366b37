package project

import (
	"errors"
	"reflect"
	"testing"
)

func listWith(tasks ...Task) TaskList {
	l := NewTaskList("test", false)
	l.Tasks = append(l.Tasks, tasks...)
	return l
}

func TestNextIndex(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  int
	}{
		{"empty list", nil, 0},
		{"single task", []Task{{Index: 0}}, 1},
		{"gap is not reused", []Task{{Index: 0}, {Index: 7}, {Index: 3}}, 8},
		{"insertion order does not matter", []Task{{Index: 42}, {Index: 1}}, 43},
		{"998 gives 999", []Task{{Index: 998}}, 999},
		{"wraps after 999", []Task{{Index: 4}, {Index: 999}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listWith(tt.tasks...)
			if got := l.NextIndex(); got != tt.want {
				t.Errorf("NextIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAddAssignsIndices(t *testing.T) {
	l := NewTaskList("p", false)
	if _, err := l.Add("first", false); err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := l.Add("second", true)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if second.Index != 1 || !second.Completed || second.Desc != "second" {
		t.Errorf("unexpected second task: %+v", *second)
	}
	if len(l.Tasks) != 2 || l.Tasks[0].Index != 0 {
		t.Errorf("unexpected tasks: %+v", l.Tasks)
	}
}

func TestAddSkipsIndicesInUseAfterWrap(t *testing.T) {
	l := listWith(Task{Desc: "first", Index: 0}, Task{Desc: "last", Index: 999})

	task, err := l.Add("new", false)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if task.Index != 1 {
		t.Errorf("Add after wrap got index %d, want 1", task.Index)
	}

	seen := map[int]bool{}
	for _, task := range l.Tasks {
		if seen[task.Index] {
			t.Fatalf("index %d used twice: %+v", task.Index, l.Tasks)
		}
		seen[task.Index] = true
	}
}

func TestAddFullList(t *testing.T) {
	l := NewTaskList("p", false)
	for i := 0; i <= MaxIndex; i++ {
		l.Tasks = append(l.Tasks, Task{Desc: "t", Index: i})
	}

	if _, err := l.Add("one more", false); !errors.Is(err, ErrListFull) {
		t.Fatalf("Add on full list error = %v, want ErrListFull", err)
	}
	if len(l.Tasks) != MaxIndex+1 {
		t.Errorf("full list grew to %d tasks", len(l.Tasks))
	}
}

func TestRemoveCompleted(t *testing.T) {
	l := listWith(
		Task{Desc: "a", Completed: true, Index: 0},
		Task{Desc: "b", Completed: false, Index: 1},
		Task{Desc: "c", Completed: true, Index: 2},
	)

	if removed := l.RemoveCompleted(); removed != 2 {
		t.Errorf("RemoveCompleted() removed %d, want 2", removed)
	}
	want := []Task{{Desc: "b", Completed: false, Index: 1}}
	if !reflect.DeepEqual(l.Tasks, want) {
		t.Errorf("tasks = %+v, want %+v", l.Tasks, want)
	}
}

func TestMarkCompletionMissingIndex(t *testing.T) {
	l := listWith(
		Task{Desc: "a", Index: 0},
		Task{Desc: "b", Index: 1},
	)
	before := append([]Task(nil), l.Tasks...)

	err := l.MarkCompletion(5, true)
	if err == nil {
		t.Fatal("expected error for missing index")
	}
	if err.Error() != "no task with index 5" {
		t.Errorf("error = %q, want %q", err.Error(), "no task with index 5")
	}
	if !errors.Is(err, ErrSelectorMiss) {
		t.Errorf("expected errors.Is(err, ErrSelectorMiss)")
	}
	if !reflect.DeepEqual(l.Tasks, before) {
		t.Errorf("list modified: %+v", l.Tasks)
	}
}

func TestMarkCompletion(t *testing.T) {
	l := listWith(Task{Desc: "a", Index: 3})

	if err := l.MarkCompletion(3, true); err != nil {
		t.Fatalf("MarkCompletion: %v", err)
	}
	if !l.Tasks[0].Completed {
		t.Error("task not marked completed")
	}

	l.MarkCompletionAll(false)
	if l.Tasks[0].Completed {
		t.Error("MarkCompletionAll(false) left task completed")
	}
}

func TestRemove(t *testing.T) {
	l := listWith(Task{Desc: "a", Index: 0}, Task{Desc: "b", Index: 1})

	if err := l.Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(l.Tasks) != 1 || l.Tasks[0].Desc != "b" {
		t.Errorf("unexpected tasks after remove: %+v", l.Tasks)
	}

	var miss *TaskNotFoundError
	if err := l.Remove(9); !errors.As(err, &miss) || miss.Index != 9 {
		t.Errorf("Remove(9) error = %v, want TaskNotFoundError{9}", err)
	}

	l.RemoveAll()
	if len(l.Tasks) != 0 {
		t.Errorf("RemoveAll left %d tasks", len(l.Tasks))
	}
}

func TestSetDescriptionAndDone(t *testing.T) {
	l := NewTaskList("p", false)
	if l.Done() {
		t.Error("empty list should not report done")
	}
	l.Add("draft", true)

	if err := l.SetDescription(0, "final"); err != nil {
		t.Fatalf("SetDescription: %v", err)
	}
	if l.Tasks[0].Desc != "final" {
		t.Errorf("desc = %q", l.Tasks[0].Desc)
	}
	if !l.Done() {
		t.Error("list with only completed tasks should report done")
	}
	if err := l.SetDescription(1, "x"); err == nil {
		t.Error("expected error for missing index")
	}
}
