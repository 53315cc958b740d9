package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, label not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable stdin, data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, invalid status, unknown labels.
	ExitValidation = 5

	// ExitConflict indicates the change clashes with existing data.
	// Use for: Creating a label that already exists.
	ExitConflict = 6
)

// ErrUsage marks errors caused by how the command was invoked
var ErrUsage = errors.New("usage error")

// ExitError carries the process exit code for a failed command
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// UsageError builds an ErrUsage error
func UsageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// ExitCode maps an error to the exit code of its category
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrConflict):
		return ExitConflict
	default:
		return ExitGeneral
	}
}

// ErrorCode maps an error to the machine readable code used in JSON output
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUsage):
		return "USAGE_ERROR"
	case errors.Is(err, models.ErrTaskNotFound):
		return "TASK_NOT_FOUND"
	case errors.Is(err, models.ErrLabelNotFound):
		return "LABEL_NOT_FOUND"
	case errors.Is(err, models.ErrUnknownLabel):
		return "UNKNOWN_LABEL"
	case errors.Is(err, models.ErrInvalidStatus):
		return "INVALID_STATUS"
	case errors.Is(err, models.ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, models.ErrConflict):
		return "CONFLICT"
	case errors.Is(err, models.ErrPersistence):
		return "PERSISTENCE_ERROR"
	default:
		return "ERROR"
	}
}

// suggestionFor returns a hint for errors the user can fix
func suggestionFor(err error) string {
	switch {
	case errors.Is(err, models.ErrUnknownLabel), errors.Is(err, models.ErrLabelNotFound):
		return "Use 'tablero label list' to see available labels or 'tablero label create' to add one"
	case errors.Is(err, models.ErrInvalidStatus):
		return "Valid statuses are: todo, in_progress, done"
	case errors.Is(err, models.ErrTaskNotFound):
		return "Use 'tablero task list' to see existing tasks"
	default:
		return ""
	}
}
