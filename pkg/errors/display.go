package errors

import (
	"fmt"
	"io"
)

// PrintErrorWithHints prints errors with actionable hints to the writer.
//
// This is the single implementation for error display across all commands.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - errs: Slice of errors to display
//   - verbose: If true, includes additional details for validation errors
//
// Output format:
//
//	Error: <error message>
//	  Hint: <actionable hint if available>
func PrintErrorWithHints(w io.Writer, errs []error, verbose bool) {
	for _, err := range errs {
		printSingleError(w, err, verbose)
	}
}

// printSingleError prints a single error with appropriate formatting.
func printSingleError(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	if ve, ok := IsValidationError(err); ok {
		if verbose {
			_, _ = fmt.Fprintf(w, "Error: %s\n", ve.VerboseError())
		} else {
			_, _ = fmt.Fprintf(w, "Error: %s\n", ve.Error())
		}
		return
	}

	if pse, ok := IsPartialSuccess(err); ok {
		_, _ = fmt.Fprintf(w, "Error: %s\n", pse.Error())
		for _, inner := range pse.Errors {
			_, _ = fmt.Fprintf(w, "  - %s\n", inner.Error())
		}
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", err.Error())
	if hint := GetHint(err); hint != "" {
		_, _ = fmt.Fprintf(w, "  Hint: %s\n", hint)
	}
}

// GetHint returns an actionable hint for the known error kinds, or "".
//
// Parameters:
//   - err: The error to look up
//
// Returns:
//   - string: Hint text, empty when no hint applies
func GetHint(err error) string {
	switch {
	case IsMissingInputReport(err):
		return "Run the dependency resolution task first (e.g. ./gradlew dependencyUpdates) or pass --report"
	case IsMalformedVersion(err):
		return "Only dotted numeric versions can be compared; check the resolver output for this dependency"
	}
	if _, ok := IsStaleSuppressions(err); ok {
		return "Remove the stale entries from .vogue.yml, update their suppressUntil date, or run 'vogue suppress' to prune them"
	}
	if _, ok := IsInvalidSuppressionDate(err); ok {
		return "Use yyyy-MM-dd or yyyy/MM/dd, no more than 3 months ahead"
	}
	return ""
}
