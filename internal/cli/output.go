package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/calculus/internal/calculus"
	"github.com/roach88/calculus/internal/catalog"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Computation failed (cancelled, unexpected error)
	ExitCommandError = 2 // Command error (bad arguments, invalid configuration, unknown function)
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric              = "E001" // Generic/unknown error
	ErrCodeInvalidArgument      = "E002" // Positional argument is not a number
	ErrCodeInvalidConfiguration = "E003" // epsilon, step, samples or rule out of range
	ErrCodeUnknownFunction      = "E004" // Function name not in catalog
	ErrCodeSessionLoad          = "E005" // Session file unreadable or invalid
	ErrCodeCancelled            = "E006" // Interrupted while pacing
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	ErrCode string // CLI error code ("E002", ...); empty means ErrCodeGeneric
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

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// newCodedError wraps err with an exit code and a CLI error code.
func newCodedError(code int, errCode, message string, err error) *ExitError {
	return &ExitError{Code: code, ErrCode: errCode, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E002", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// newFormatter builds the formatter for a command from the global options.
// Diagnostics go to stderr so they never corrupt JSON on stdout.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// IsJSON reports whether output is JSON.
func (f *OutputFormatter) IsJSON() bool {
	return f.Format == "json"
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.IsJSON() {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.IsJSON() {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// Fail writes err through the formatter and returns the matching ExitError.
//
// Configuration and lookup problems are command errors (exit 2); anything
// else is a failure (exit 1). An ExitError passes through with its own code.
func (f *OutputFormatter) Fail(err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		errCode := exitErr.ErrCode
		if errCode == "" {
			errCode = ErrCodeGeneric
		}
		message := exitErr.Message
		if exitErr.Err != nil {
			message = exitErr.Err.Error()
		}
		_ = f.Error(errCode, message, nil)
		return exitErr
	}

	code, exit, summary := classify(err)

	var details interface{}
	var ce *calculus.ConfigError
	if errors.As(err, &ce) {
		details = map[string]string{"field": ce.Field, "value": ce.Value}
	}

	_ = f.Error(code, err.Error(), details)
	return newCodedError(exit, code, summary, err)
}

// classify maps an error to its CLI error code, exit code and a short summary.
func classify(err error) (string, int, string) {
	switch {
	case calculus.IsInvalidConfiguration(err):
		return ErrCodeInvalidConfiguration, ExitCommandError, "invalid configuration"
	case errors.Is(err, catalog.ErrUnknownFunction):
		return ErrCodeUnknownFunction, ExitCommandError, "unknown function"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeCancelled, ExitFailure, "cancelled"
	default:
		return ErrCodeGeneric, ExitFailure, "command failed"
	}
}

// parseNumber parses a positional argument as a float64.
func parseNumber(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, newCodedError(ExitCommandError, ErrCodeInvalidArgument, "invalid argument",
			fmt.Errorf("%s: %q is not a number", name, s))
	}
	return v, nil
}

// parseNumbers parses args in order, naming each by names[i].
func parseNumbers(names []string, args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := parseNumber(names[i], arg)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
