package errors

import (
	"errors"
	"fmt"
	"strings"
)

// MalformedVersionError indicates a version string without extractable
// leading numeric components.
//
// Fields:
//   - Raw: The version string as received
//   - Err: The underlying parse failure
type MalformedVersionError struct {
	Raw string
	Err error
}

// Error implements the error interface.
func (e *MalformedVersionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed version %q: %v", e.Raw, e.Err)
	}
	return fmt.Sprintf("malformed version %q", e.Raw)
}

// Unwrap returns the underlying parse failure.
func (e *MalformedVersionError) Unwrap() error {
	return e.Err
}

// NewMalformedVersionError creates a MalformedVersionError.
func NewMalformedVersionError(raw string, err error) *MalformedVersionError {
	return &MalformedVersionError{Raw: raw, Err: err}
}

// IsMalformedVersion reports whether err is, or wraps, a MalformedVersionError.
func IsMalformedVersion(err error) bool {
	var target *MalformedVersionError
	return errors.As(err, &target)
}

// SuppressionDateReason explains why a suppressUntil date was rejected.
type SuppressionDateReason string

const (
	// SuppressionDateUnparsable means the date matches neither yyyy-MM-dd nor yyyy/MM/dd.
	SuppressionDateUnparsable SuppressionDateReason = "unparsable"

	// SuppressionDateTooFar means the date lies beyond the allowed future window.
	SuppressionDateTooFar SuppressionDateReason = "too_far"
)

// InvalidSuppressionDateError indicates a suppressUntil value that cannot be used.
//
// Fields:
//   - Value: The suppressUntil value as configured
//   - Reason: Why it was rejected
//   - MaxMonths: The future window in months (for SuppressionDateTooFar)
//   - Err: The underlying parse error, if any
type InvalidSuppressionDateError struct {
	Value     string
	Reason    SuppressionDateReason
	MaxMonths int
	Err       error
}

// Error implements the error interface.
func (e *InvalidSuppressionDateError) Error() string {
	if e.Reason == SuppressionDateTooFar {
		return fmt.Sprintf("invalid 'suppressUntil' date provided: %s. The date must be within %d months of today", e.Value, e.MaxMonths)
	}
	return fmt.Sprintf("invalid 'suppressUntil' date provided: %s. Please use one of the following formats: yyyy-MM-dd or yyyy/MM/dd", e.Value)
}

// Unwrap returns the underlying parse error.
func (e *InvalidSuppressionDateError) Unwrap() error {
	return e.Err
}

// IsInvalidSuppressionDate checks if err is an InvalidSuppressionDateError and returns it.
//
// Returns:
//   - *InvalidSuppressionDateError: The error if err is one, nil otherwise
//   - bool: true if err is an InvalidSuppressionDateError
func IsInvalidSuppressionDate(err error) (*InvalidSuppressionDateError, bool) {
	var target *InvalidSuppressionDateError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// StaleSuppression describes one expired suppression.
//
// Fields:
//   - Package: The package pattern of the rule
//   - SuppressUntil: The configured end date
//   - DaysAgo: Whole days between the end date and today
type StaleSuppression struct {
	Package       string
	SuppressUntil string
	DaysAgo       int
}

// StaleSuppressionsError indicates one or more configured suppressions have
// already expired.
type StaleSuppressionsError struct {
	Stale []StaleSuppression
}

// Error implements the error interface.
func (e *StaleSuppressionsError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d suppression(s) have gone stale:", len(e.Stale)))
	for _, s := range e.Stale {
		sb.WriteString(fmt.Sprintf(" %s (expired %s)", s.Package, s.SuppressUntil))
	}
	return sb.String()
}

// IsStaleSuppressions checks if err is a StaleSuppressionsError and returns it.
func IsStaleSuppressions(err error) (*StaleSuppressionsError, bool) {
	var target *StaleSuppressionsError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// MissingInputReportError indicates the external dependency report is absent.
// Nothing can be evaluated without it.
type MissingInputReportError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *MissingInputReportError) Error() string {
	return fmt.Sprintf("dependency report could not be loaded at %s", e.Path)
}

// Unwrap returns the underlying filesystem error.
func (e *MissingInputReportError) Unwrap() error {
	return e.Err
}

// IsMissingInputReport reports whether err is, or wraps, a MissingInputReportError.
func IsMissingInputReport(err error) bool {
	var target *MissingInputReportError
	return errors.As(err, &target)
}

// ItemError ties an evaluation failure to the dependency it belongs to.
//
// Fields:
//   - Package: The "<group>:<name>" identifier
//   - Err: The failure (MalformedVersionError, InvalidSuppressionDateError, ...)
type ItemError struct {
	Package string
	Err     error
}

// Error implements the error interface.
func (e *ItemError) Error() string {
	return fmt.Sprintf("%s: %v", e.Package, e.Err)
}

// Unwrap returns the wrapped failure.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// NewItemError wraps err with the dependency identifier. Returns nil when err is nil.
func NewItemError(pkg string, err error) error {
	if err == nil {
		return nil
	}
	return &ItemError{Package: pkg, Err: err}
}
