package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ValidationError represents a policy document validation failure.
//
// Fields:
//   - Field: Path of the invalid field (e.g., "packageRules[2].package")
//   - Message: Description of what's wrong
//   - Expected: What the valid value should look like
//   - Hint: Actionable hint for fixing the error
//
// Example:
//
//	return &ValidationError{
//	    Field:    "defaultRules.major.maxDiff",
//	    Message:  "must not be below -1",
//	    Expected: "-1 (no limit) or a non-negative integer",
//	}
type ValidationError struct {
	// Field is the path of the field that failed validation.
	Field string

	// Message describes what is wrong with the field.
	Message string

	// Expected describes what a valid value should look like.
	Expected string

	// Hint provides an actionable suggestion for fixing the error.
	Hint string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// VerboseError returns a detailed error message with the expected value and hint.
func (e *ValidationError) VerboseError() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}
	if e.Hint != "" {
		sb.WriteString(fmt.Sprintf("\n    Hint: %s", e.Hint))
	}
	return sb.String()
}

// IsValidationError checks if err is a ValidationError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ValidationError: The ValidationError if err is one, nil otherwise
//   - bool: true if err is a ValidationError
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NewConfigValidationError creates a ValidationError for a policy field.
//
// Parameters:
//   - field: The field path that failed validation
//   - message: Description of the error
//
// Returns:
//   - *ValidationError: New validation error
func NewConfigValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidationResult holds the results of validating a policy document.
//
// Fields:
//   - Errors: Slice of validation errors
//   - Warnings: Slice of warning messages
type ValidationResult struct {
	Errors   []*ValidationError
	Warnings []string
}

// NewValidationResult creates a new empty ValidationResult.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Errors:   make([]*ValidationError, 0),
		Warnings: make([]string, 0),
	}
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AddError adds a validation error to the result.
func (r *ValidationResult) AddError(err *ValidationError) {
	r.Errors = append(r.Errors, err)
}

// AddWarning adds a warning message to the result.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// ErrorMessage returns a formatted error message for all validation errors.
//
// Returns:
//   - string: Formatted error messages, or empty string if no errors
func (r *ValidationResult) ErrorMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Validation failed:\n")
	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// VerboseErrorMessage returns detailed error messages with hints.
func (r *ValidationResult) VerboseErrorMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Validation failed:\n")
	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.VerboseError()))
	}
	return sb.String()
}

// PrintTo writes validation results to the given writer.
//
// Parameters:
//   - w: Writer to output to
//   - verbose: If true, includes expected values and hints
func (r *ValidationResult) PrintTo(w io.Writer, verbose bool) {
	for _, warning := range r.Warnings {
		_, _ = fmt.Fprintf(w, "Warning: %s\n", warning)
	}

	if len(r.Errors) > 0 {
		if verbose {
			_, _ = fmt.Fprint(w, r.VerboseErrorMessage())
		} else {
			_, _ = fmt.Fprint(w, r.ErrorMessage())
		}
	}
}
