package project

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates that no ancestor of the start directory holds a
	// root task list.
	ErrNotFound = errors.New("no project found")

	// ErrSelectorMiss is matched by every error reporting that a selection
	// (task index or project name prefix) found nothing.
	ErrSelectorMiss = errors.New("selection matched nothing")

	// ErrListFull is returned by TaskList.Add when every index is in use.
	ErrListFull = errors.New("task list is full")
)

// SkippedFile records a candidate file that could not be loaded while
// looking for the root.
type SkippedFile struct {
	Path string
	Err  error
}

// NotFoundError is returned by Resolver.LoadRoot when the upward walk is
// exhausted. It unwraps to ErrNotFound.
type NotFoundError struct {
	Start   string
	Skipped []SkippedFile
}

func (e *NotFoundError) Error() string {
	if len(e.Skipped) == 0 {
		return ErrNotFound.Error()
	}
	paths := make([]string, 0, len(e.Skipped))
	for _, s := range e.Skipped {
		paths = append(paths, s.Path)
	}
	return fmt.Sprintf("%s (skipped unreadable project files: %s)", ErrNotFound, strings.Join(paths, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// FieldErrorKind classifies schema violations in a project file.
type FieldErrorKind int

const (
	MissingField FieldErrorKind = iota
	DuplicateField
	UnknownField
)

func (k FieldErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case DuplicateField:
		return "duplicate field"
	case UnknownField:
		return "unknown field"
	default:
		return "invalid field"
	}
}

// FieldError reports a missing, duplicate, or unknown field.
type FieldError struct {
	Kind  FieldErrorKind
	Field string
	// Where is empty for top-level fields, otherwise e.g. "task 3".
	Where string
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s `%s`", e.Kind, e.Field)
	if e.Where != "" {
		msg += " in " + e.Where
	}
	return msg
}

// ParseError wraps any failure to decode a project file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid project file syntax: %v", e.Err)
	}
	return fmt.Sprintf("invalid project file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TaskNotFoundError is returned when an index does not exist in a list.
type TaskNotFoundError struct {
	Index int
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("no task with index %d", e.Index)
}

func (e *TaskNotFoundError) Is(target error) bool { return target == ErrSelectorMiss }

// ProjectNotFoundError is returned when no node name starts with Prefix.
type ProjectNotFoundError struct {
	Prefix string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("no project with name starting with %q", e.Prefix)
}

func (e *ProjectNotFoundError) Is(target error) bool { return target == ErrSelectorMiss }
