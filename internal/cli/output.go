package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// HumanPrinter is implemented by results with a human-readable rendering
type HumanPrinter interface {
	Human() string
}

// IDLister is implemented by list results so quiet mode can print one ID per line
type IDLister interface {
	IDs() []int
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Fprintf(os.Stdout, "%d\n", idGetter.GetID())
			return nil
		}
		if lister, ok := data.(IDLister); ok {
			for _, id := range lister.IDs() {
				fmt.Fprintf(os.Stdout, "%d\n", id)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns it wrapped in an ExitError carrying the exit
// code of its category. An error that was already reported passes through.
func (f *OutputFormatter) Fail(err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestionFor(err)); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return &ExitError{Code: ExitCode(err), Err: err}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	switch v := data.(type) {
	case nil:
		return nil
	case HumanPrinter:
		fmt.Fprintln(os.Stdout, v.Human())
	case string:
		fmt.Fprintln(os.Stdout, v)
	default:
		fmt.Fprintf(os.Stdout, "%+v\n", data)
	}
	return nil
}
