package errors

import (
	"errors"
	"fmt"
)

// Process exit codes. Scripts rely on these staying stable.
const (
	// ExitSuccess means no rule violations.
	ExitSuccess = 0

	// ExitPartialFailure means some dependencies could not be evaluated, or
	// the suppression workflow ran out of input.
	ExitPartialFailure = 1

	// ExitFailure means rule violations were found or the run failed.
	ExitFailure = 2

	// ExitConfigError means the run could not start: an invalid policy,
	// stale suppressions or a missing dependency report.
	ExitConfigError = 3
)

// ExitError ends a command with a specific exit code.
//
// Message takes precedence over Err when printing; Err stays reachable
// through errors.Is and errors.As.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return fmt.Sprintf("exit code %d", e.Code)
	}
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with an exit code. err may be nil.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with a formatted message.
func NewExitErrorf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode maps err to a process exit code.
//
// The checks run in order:
//   - nil is ExitSuccess
//   - an *ExitError anywhere in the chain supplies its own code
//   - a *PartialSuccessError is ExitPartialFailure, whatever its item errors are
//   - stale suppressions, a missing report and validation errors are ExitConfigError
//   - anything else is ExitFailure
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if exitErr, ok := IsExitError(err); ok {
		return exitErr.Code
	}

	if _, ok := IsPartialSuccess(err); ok {
		return ExitPartialFailure
	}

	if _, ok := IsStaleSuppressions(err); ok {
		return ExitConfigError
	}
	if IsMissingInputReport(err) {
		return ExitConfigError
	}
	if _, ok := IsValidationError(err); ok {
		return ExitConfigError
	}
	return ExitFailure
}

// IsExitError returns the first *ExitError in err's chain.
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// PartialSuccessError reports a batch in which some dependencies were
// evaluated and others failed. Errors holds one *ItemError per failure.
type PartialSuccessError struct {
	Evaluated int
	Failed    int
	Errors    []error
}

// Error implements the error interface.
//
// Example: "3 evaluated, 1 failed"
func (e *PartialSuccessError) Error() string {
	return fmt.Sprintf("%d evaluated, %d failed", e.Evaluated, e.Failed)
}

// Unwrap exposes the per-dependency failures to errors.Is and errors.As.
func (e *PartialSuccessError) Unwrap() []error {
	return e.Errors
}

// NewPartialSuccessError creates a PartialSuccessError.
func NewPartialSuccessError(evaluated, failed int, errs []error) *PartialSuccessError {
	return &PartialSuccessError{
		Evaluated: evaluated,
		Failed:    failed,
		Errors:    errs,
	}
}

// IsPartialSuccess returns the first *PartialSuccessError in err's chain.
func IsPartialSuccess(err error) (*PartialSuccessError, bool) {
	var pse *PartialSuccessError
	if errors.As(err, &pse) {
		return pse, true
	}
	return nil, false
}
