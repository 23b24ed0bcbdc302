// Package errors provides unified error types and display for vogue.
//
// This package consolidates all error handling into a single location:
//   - ExitError: Command exit with specific exit code
//   - PartialSuccessError: Some dependencies evaluated, some failed
//   - ValidationError: Policy document validation failures
//   - MalformedVersionError, InvalidSuppressionDateError: per-dependency failures
//   - StaleSuppressionsError, MissingInputReportError: run-level failures
//
// Error Display:
//
// The package provides consistent error formatting with actionable hints:
//
//	errors.PrintErrorWithHints(os.Stderr, errs, verbose)
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): No violations
//   - ExitPartialFailure (1): Some dependencies could not be evaluated
//   - ExitFailure (2): Rule violations present or critical error
//   - ExitConfigError (3): Configuration, stale suppression or missing input error
package errors
