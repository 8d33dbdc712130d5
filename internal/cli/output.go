package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Exit codes for the command.
const (
	ExitSuccess = 0 // Chord printed
	ExitFailure = 1 // Output could not be written
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results.
type OutputFormatter struct {
	Writer io.Writer
}

// Success writes line followed by a newline.
func (f *OutputFormatter) Success(line string) error {
	if _, err := fmt.Fprintln(f.Writer, line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// newLogger builds the diagnostic logger. Diagnostics never go to stdout.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
