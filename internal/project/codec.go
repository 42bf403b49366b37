package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the per-directory project file.
const FileName = ".tutel.toml"

// fileList and fileTask mirror the on-disk layout. Pointers let Decode tell
// an absent field from a zero value.
type fileList struct {
	Name    *string    `toml:"name"`
	IsChild *bool      `toml:"is_child"`
	Tasks   []fileTask `toml:"tasks"`
}

type fileTask struct {
	Desc *string `toml:"desc"`
	// Name is the description key written by older versions.
	Name      *string `toml:"name"`
	Completed *bool   `toml:"completed"`
	Index     *int64  `toml:"index"`
	Due       *string `toml:"due"`
}

type encodedList struct {
	Name    string        `toml:"name"`
	IsChild bool          `toml:"is_child,omitempty"`
	Tasks   []encodedTask `toml:"tasks"`
}

type encodedTask struct {
	Desc      string `toml:"desc"`
	Completed bool   `toml:"completed"`
	Index     int    `toml:"index"`
	Due       string `toml:"due,omitempty"`
}

// Encode writes l as TOML. is_child is only written when set.
func Encode(w io.Writer, l TaskList) error {
	out := encodedList{
		Name:    l.Name,
		IsChild: l.IsChild,
		Tasks:   make([]encodedTask, 0, len(l.Tasks)),
	}
	for _, t := range l.Tasks {
		out.Tasks = append(out.Tasks, encodedTask{
			Desc:      t.Desc,
			Completed: t.Completed,
			Index:     t.Index,
			Due:       t.Due,
		})
	}

	enc := toml.NewEncoder(w)
	enc.Indent = ""
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	return nil
}

// Marshal is Encode into a byte slice.
func Marshal(l TaskList) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a TaskList. Schema violations, including keys defined twice,
// come back as *FieldError. Other TOML syntax errors are returned as the
// toml package reports them.
func Decode(r io.Reader) (TaskList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return TaskList{}, err
	}

	var raw fileList
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		if fe := duplicateKeyError(err, data); fe != nil {
			return TaskList{}, fe
		}
		return TaskList{}, err
	}

	if fe := undecodedKeyError(md); fe != nil {
		return TaskList{}, fe
	}

	if raw.Name == nil {
		return TaskList{}, &FieldError{Kind: MissingField, Field: "name"}
	}
	if !md.IsDefined("tasks") {
		return TaskList{}, &FieldError{Kind: MissingField, Field: "tasks"}
	}

	list := TaskList{
		Name:  *raw.Name,
		Tasks: make([]Task, 0, len(raw.Tasks)),
	}
	if raw.IsChild != nil {
		list.IsChild = *raw.IsChild
	}

	seen := make(map[int]bool, len(raw.Tasks))
	for i, ft := range raw.Tasks {
		where := fmt.Sprintf("task %d", i+1)
		t, err := decodeTask(ft, where)
		if err != nil {
			return TaskList{}, err
		}
		if seen[t.Index] {
			return TaskList{}, &FieldError{Kind: DuplicateField, Field: "index", Where: where}
		}
		seen[t.Index] = true
		list.Tasks = append(list.Tasks, t)
	}
	return list, nil
}

var redefinedKey = regexp.MustCompile(`^Key '(.+)' has already been defined\.?$`)

// duplicateKeyError maps the toml error for a key defined twice to a
// *FieldError. It returns nil for any other error.
func duplicateKeyError(err error, data []byte) *FieldError {
	var pe toml.ParseError
	if !errors.As(err, &pe) {
		return nil
	}
	m := redefinedKey.FindStringSubmatch(pe.Message)
	if m == nil {
		return nil
	}
	parts := strings.Split(m[1], ".")
	fe := &FieldError{Kind: DuplicateField, Field: parts[len(parts)-1]}
	if len(parts) == 1 {
		return fe
	}
	fe.Where = parts[0]
	if parts[0] == "tasks" {
		end := pe.Position.Start
		if end < 0 || end > len(data) {
			end = len(data)
		}
		if n := countTaskTables(data[:end]); n > 0 {
			fe.Where = fmt.Sprintf("task %d", n)
		}
	}
	return fe
}

// countTaskTables counts the [[tasks]] headers in src.
func countTaskTables(src []byte) int {
	n := 0
	for _, line := range strings.Split(string(src), "\n") {
		if strings.TrimSpace(line) == "[[tasks]]" {
			n++
		}
	}
	return n
}

// undecodedKeyError reports the first key that maps to no field. Keys under
// [[tasks]] are attributed to the table they appear in.
func undecodedKeyError(md toml.MetaData) *FieldError {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	unknown := make(map[string]bool, len(undecoded))
	for _, k := range undecoded {
		unknown[k.String()] = true
	}

	tables := 0
	for _, key := range md.Keys() {
		if len(key) == 1 && key[0] == "tasks" && md.Type("tasks") == "ArrayHash" {
			tables++
		}
		if !unknown[key.String()] {
			continue
		}
		fe := &FieldError{Kind: UnknownField, Field: key[len(key)-1]}
		switch {
		case len(key) > 1 && key[0] == "tasks" && tables > 0:
			fe.Where = fmt.Sprintf("task %d", tables)
		case len(key) > 1:
			fe.Where = key[0]
		}
		return fe
	}

	key := undecoded[0]
	fe := &FieldError{Kind: UnknownField, Field: key[len(key)-1]}
	if len(key) > 1 {
		fe.Where = key[0]
	}
	return fe
}

func decodeTask(ft fileTask, where string) (Task, error) {
	var desc string
	switch {
	case ft.Desc != nil && ft.Name != nil:
		return Task{}, &FieldError{Kind: DuplicateField, Field: "desc/name", Where: where}
	case ft.Desc != nil:
		desc = *ft.Desc
	case ft.Name != nil:
		desc = *ft.Name
	default:
		return Task{}, &FieldError{Kind: MissingField, Field: "desc", Where: where}
	}

	if ft.Completed == nil {
		return Task{}, &FieldError{Kind: MissingField, Field: "completed", Where: where}
	}
	if ft.Index == nil {
		return Task{}, &FieldError{Kind: MissingField, Field: "index", Where: where}
	}
	if *ft.Index < 0 || *ft.Index > MaxIndex {
		return Task{}, fmt.Errorf("index %d in %s is outside 0..%d", *ft.Index, where, MaxIndex)
	}

	t := Task{Desc: desc, Index: int(*ft.Index), Completed: *ft.Completed}
	if ft.Due != nil {
		t.Due = *ft.Due
	}
	return t, nil
}

// Unmarshal is Decode over a byte slice.
func Unmarshal(data []byte) (TaskList, error) {
	return Decode(bytes.NewReader(data))
}

// LoadFile reads and decodes the project file at path. Read failures are
// returned wrapped, decode failures as *ParseError.
func LoadFile(path string, steps int) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read project file: %w", err)
	}
	defer f.Close()

	list, err := Decode(f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &Node{Path: path, Steps: steps, Data: list}, nil
}

// HasProject reports whether dir holds a project file and returns its path.
func HasProject(dir string) (string, bool) {
	return hasFile(dir, FileName)
}

func hasFile(dir, name string) (string, bool) {
	path := filepath.Join(dir, name)
	st, err := os.Stat(path)
	if err != nil || !st.Mode().IsRegular() {
		return "", false
	}
	return path, true
}
