package cli

import (
	"errors"

	"github.com/aidanlsb/tutel/internal/editor"
	"github.com/aidanlsb/tutel/internal/nav"
	"github.com/aidanlsb/tutel/internal/project"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	ErrProjectNotFound = "PROJECT_NOT_FOUND"
	ErrProjectInvalid  = "PROJECT_INVALID"
	ErrProjectExists   = "PROJECT_EXISTS"
	ErrPrefixNotFound  = "PREFIX_NOT_FOUND"
	ErrTaskNotFound    = "TASK_NOT_FOUND"
	ErrListFull        = "LIST_FULL"
	ErrConfigInvalid   = "CONFIG_INVALID"
	ErrNavNotFound     = "NAV_NOT_FOUND"
	ErrNavExists       = "NAV_EXISTS"
	ErrNavStale        = "NAV_STALE"
	ErrInvalidInput    = "INVALID_INPUT"
	ErrConfirmRequired = "CONFIRMATION_REQUIRED"
	ErrEditorFailed    = "EDITOR_FAILED"
	ErrFileWriteError  = "FILE_WRITE_ERROR"
	ErrInternal        = "INTERNAL_ERROR"
)

// classifyError maps an error to its code, a suggestion, and details.
func classifyError(err error) (code, suggestion string, details interface{}) {
	var notFound *project.NotFoundError
	var parseErr *project.ParseError
	var taskErr *project.TaskNotFoundError
	var prefixErr *project.ProjectNotFoundError

	switch {
	case errors.As(err, &notFound):
		var skipped []string
		for _, s := range notFound.Skipped {
			skipped = append(skipped, s.Path)
		}
		if len(skipped) > 0 {
			details = map[string]interface{}{"skipped": skipped}
		}
		return ErrProjectNotFound, "Run 'tutel new' to create a project here", details
	case errors.Is(err, project.ErrNotFound):
		return ErrProjectNotFound, "Run 'tutel new' to create a project here", nil
	case errors.As(err, &parseErr):
		return ErrProjectInvalid, "Fix the project file by hand or remove it", map[string]string{"path": parseErr.Path}
	case errors.As(err, &taskErr):
		return ErrTaskNotFound, "Run 'tutel show' to see task indices", map[string]int{"index": taskErr.Index}
	case errors.Is(err, project.ErrListFull):
		return ErrListFull, "Run 'tutel rm --cleanup' to free indices", nil
	case errors.As(err, &prefixErr):
		return ErrPrefixNotFound, "Run 'tutel show' to see project names", map[string]string{"prefix": prefixErr.Prefix}
	case errors.Is(err, nav.ErrNotFound):
		return ErrNavNotFound, "Run 'tutel nav list' to see saved names", nil
	case errors.Is(err, nav.ErrExists):
		return ErrNavExists, "Pick another name or run 'tutel nav rm' first", nil
	case errors.Is(err, nav.ErrStale):
		return ErrNavStale, "The entry was removed; add it again with 'tutel nav add'", nil
	case errors.Is(err, errProjectExists):
		return ErrProjectExists, "Use --force to overwrite it", nil
	case errors.Is(err, errConfirmRequired):
		return ErrConfirmRequired, "Pass --yes to confirm", nil
	case errors.Is(err, editor.ErrNoEditor), errors.Is(err, editor.ErrFailed):
		return ErrEditorFailed, "Pass the new description as arguments or set --editor", nil
	case errors.Is(err, errSaveFailed):
		return ErrFileWriteError, "Check that the directory is writable", nil
	case errors.Is(err, errInvalidInput):
		return ErrInvalidInput, "", nil
	}
	return ErrInternal, "", nil
}

var (
	errProjectExists   = errors.New("a project already exists here")
	errConfirmRequired = errors.New("confirmation required")
	errInvalidInput    = errors.New("invalid input")
)
