package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/aidanlsb/tutel/internal/project"
)

func TestHeadlineMarkers(t *testing.T) {
	tests := []struct {
		name  string
		tasks []project.Task
		want  string
	}{
		{name: "empty", tasks: nil, want: "[empty]groceries"},
		{name: "open", tasks: []project.Task{{Desc: "milk"}, {Desc: "eggs", Index: 1, Completed: true}}, want: "[X]groceries"},
		{name: "done", tasks: []project.Task{{Desc: "milk", Completed: true}}, want: "[✓]groceries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Headline(project.TaskList{Name: "groceries", Tasks: tt.tasks})
			if !strings.Contains(got, tt.want) {
				t.Fatalf("Headline() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestTaskLine(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.Local)

	got := TaskLine(project.Task{Desc: "milk", Index: 7}, now)
	if !strings.Contains(got, "007) ") || !strings.Contains(got, "[X]") || !strings.HasSuffix(got, "milk") {
		t.Fatalf("unexpected open task line %q", got)
	}

	got = TaskLine(project.Task{Desc: "eggs", Index: 12, Completed: true, Due: "2025-03-01"}, now)
	if !strings.Contains(got, "012) ") || !strings.Contains(got, "[✓]") || !strings.Contains(got, "(due 2025-03-01)") {
		t.Fatalf("unexpected completed task line %q", got)
	}

	got = TaskLine(project.Task{Desc: "bread", Index: 3, Due: "2025-03-01"}, now)
	if !strings.Contains(got, "(overdue 2025-03-01)") {
		t.Fatalf("expected overdue marker in %q", got)
	}
}

func TestRenderTreeIndentsChildren(t *testing.T) {
	root := project.New("/tmp/root", "root", false)
	root.Data.Add("top", false)
	child := project.New("/tmp/root/a", "child", true)
	child.Data.Add("inner", true)
	root.Attach(child)

	var out strings.Builder
	if err := RenderTree(&out, root, TreeOptions{}); err != nil {
		t.Fatalf("RenderTree() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out.String())
	}
	if strings.HasPrefix(lines[0], " ") || !strings.Contains(lines[0], "root") {
		t.Errorf("root headline should not be indented: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "  ") || !strings.Contains(lines[2], "child") {
		t.Errorf("child headline should be indented: %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "  000) ") {
		t.Errorf("child task should be indented: %q", lines[3])
	}
}

func TestRenderTreeHideCompleted(t *testing.T) {
	root := project.New("/tmp/root", "root", false)
	root.Data.Add("open", false)
	root.Data.Add("closed", true)

	var out strings.Builder
	if err := RenderTree(&out, root, TreeOptions{HideCompleted: true}); err != nil {
		t.Fatalf("RenderTree() error = %v", err)
	}
	if strings.Contains(out.String(), "closed") {
		t.Fatalf("completed task should be hidden: %q", out.String())
	}
	if !strings.Contains(out.String(), "open") {
		t.Fatalf("open task missing: %q", out.String())
	}
}
