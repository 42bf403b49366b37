// Package testutil builds temporary directory trees of tutel project files
// for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// projectFileName duplicates project.FileName so this package stays free
// of project imports and usable from its tests.
const projectFileName = ".tutel.toml"

// TestTask is a task written by WithProject.
type TestTask struct {
	Desc      string
	Completed bool
	Index     int
}

// TestTree is a temporary directory populated with project files.
type TestTree struct {
	Path  string
	t     *testing.T
	files map[string]string
	dirs  []string
}

// NewTestTree creates a builder. Call Build to write it to disk.
func NewTestTree(t *testing.T) *TestTree {
	t.Helper()
	return &TestTree{
		t:     t,
		files: make(map[string]string),
	}
}

// WithProject adds a project file in relDir ("" or "." for the tree root).
func (tt *TestTree) WithProject(relDir, name string, isChild bool, tasks ...TestTask) *TestTree {
	tt.files[filepath.Join(relDir, projectFileName)] = ProjectTOML(name, isChild, tasks...)
	return tt
}

// WithRawProject writes content verbatim as the project file in relDir.
func (tt *TestTree) WithRawProject(relDir, content string) *TestTree {
	tt.files[filepath.Join(relDir, projectFileName)] = content
	return tt
}

// WithFile adds an arbitrary file, relative to the tree root.
func (tt *TestTree) WithFile(relPath, content string) *TestTree {
	tt.files[relPath] = content
	return tt
}

// WithDir adds an empty directory.
func (tt *TestTree) WithDir(relDir string) *TestTree {
	tt.dirs = append(tt.dirs, relDir)
	return tt
}

// Build creates the directory and writes every configured file.
func (tt *TestTree) Build() *TestTree {
	tt.t.Helper()
	tt.Path = tt.t.TempDir()

	for _, d := range tt.dirs {
		if err := os.MkdirAll(filepath.Join(tt.Path, d), 0o755); err != nil {
			tt.t.Fatalf("failed to create directory %s: %v", d, err)
		}
	}
	for rel, content := range tt.files {
		tt.writeFile(rel, content)
	}
	return tt
}

func (tt *TestTree) writeFile(relPath, content string) {
	tt.t.Helper()
	full := filepath.Join(tt.Path, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		tt.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		tt.t.Fatalf("failed to write %s: %v", relPath, err)
	}
}

// Dir returns the absolute path of a directory inside the tree.
func (tt *TestTree) Dir(relDir string) string {
	return filepath.Join(tt.Path, relDir)
}

// ProjectPath returns the absolute path of the project file in relDir.
func (tt *TestTree) ProjectPath(relDir string) string {
	return filepath.Join(tt.Path, relDir, projectFileName)
}

// ReadProject returns the raw content of the project file in relDir.
func (tt *TestTree) ReadProject(relDir string) string {
	tt.t.Helper()
	data, err := os.ReadFile(tt.ProjectPath(relDir))
	if err != nil {
		tt.t.Fatalf("failed to read project in %s: %v", relDir, err)
	}
	return string(data)
}

// AssertProjectContains fails the test if the project file in relDir does
// not contain substr.
func (tt *TestTree) AssertProjectContains(relDir, substr string) {
	tt.t.Helper()
	content := tt.ReadProject(relDir)
	if !strings.Contains(content, substr) {
		tt.t.Errorf("expected project in %q to contain %q, got:\n%s", relDir, substr, content)
	}
}

// AssertProjectNotContains fails the test if the project file in relDir
// contains substr.
func (tt *TestTree) AssertProjectNotContains(relDir, substr string) {
	tt.t.Helper()
	content := tt.ReadProject(relDir)
	if strings.Contains(content, substr) {
		tt.t.Errorf("expected project in %q not to contain %q, got:\n%s", relDir, substr, content)
	}
}

// ProjectTOML renders a project file the way tutel writes it.
func ProjectTOML(name string, isChild bool, tasks ...TestTask) string {
	var b strings.Builder
	fmt.Fprintf(&b, "name = %q\n", name)
	if isChild {
		b.WriteString("is_child = true\n")
	}
	if len(tasks) == 0 {
		b.WriteString("tasks = []\n")
		return b.String()
	}
	for _, task := range tasks {
		fmt.Fprintf(&b, "\n[[tasks]]\ndesc = %q\ncompleted = %t\nindex = %d\n", task.Desc, task.Completed, task.Index)
	}
	return b.String()
}
