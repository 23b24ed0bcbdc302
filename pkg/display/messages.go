package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/vogue/pkg/constants"
	"github.com/ajxudir/vogue/pkg/display/colors"
	"github.com/ajxudir/vogue/pkg/errors"
	"github.com/ajxudir/vogue/pkg/policy"
)

// StaleSuppressionsMessage builds the text shown when configured suppressions
// have expired.
//
// Example output:
//
//	The following suppressions have gone stale. Please either remove them from the .vogue.yml or update the suppressUntil date.
//	 -> com.acme:core expired on 2024-01-31 (12 days ago)
func StaleSuppressionsMessage(stale []errors.StaleSuppression, p colors.Palette) string {
	if len(stale) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(p.Cyan(fmt.Sprintf("The following suppressions have gone stale. Please either remove them from the %s or update the suppressUntil date.", constants.OverrideFileName)))
	sb.WriteString("\n")
	for _, s := range stale {
		fmt.Fprintf(&sb, " -> %s expired on %s %s\n",
			p.Green(s.Package), p.Red(s.SuppressUntil), p.Yellow(fmt.Sprintf("(%d days ago)", s.DaysAgo)))
	}
	return sb.String()
}

// ViolationsMessage builds the failure text for count rule violations.
func ViolationsMessage(count int, p colors.Palette) string {
	return fmt.Sprintf("%s %s %s %s",
		p.Red("There are"), p.Yellow(fmt.Sprint(count)), p.Red("rule violations that must be fixed."),
		p.Cyan("Please refer to the report output above."))
}

// PrintSkipped lists dependencies left out of evaluation.
//
// Does nothing if deps is empty. Prints a blank line before the list.
//
// Example output:
//
//	<blank line>
//	🚫 Skipped (pre-release): com.acme:core [1.2.0 -> 2.0.0-rc.1]
func PrintSkipped(w io.Writer, deps []policy.Dependency, reason string) {
	if len(deps) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	for _, dep := range deps {
		_, _ = fmt.Fprintf(w, "%s %s (%s): %s [%s -> %s]\n", constants.IconIgnored, constants.StatusSkipped,
			reason, dep.ID(), SafeVersionValue(dep.Current), SafeVersionValue(dep.Latest))
	}
}

// PrintSummary prints the one-line report summary.
//
// Example output:
//
//	Summary: 3 up to date, 2 warnings, 1 violations, 0 suppressed
func PrintSummary(w io.Writer, report *policy.Report) {
	if report == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Summary: %s\n", report.Summary())
}

// WarningCollector captures warnings for deferred output.
//
// Implements io.Writer so it can be installed with warnings.SetWarningWriter;
// collected lines are printed after the report.
type WarningCollector struct {
	messages []string
}

// Write splits p on newlines and stores the non-empty trimmed lines.
func (c *WarningCollector) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			c.messages = append(c.messages, trimmed)
		}
	}
	return len(p), nil
}

// Messages returns a copy of the collected lines.
func (c *WarningCollector) Messages() []string {
	copied := make([]string, len(c.messages))
	copy(copied, c.messages)
	return copied
}

// Reset clears all collected messages.
func (c *WarningCollector) Reset() {
	c.messages = nil
}

// NewWarningCollector creates an empty WarningCollector.
func NewWarningCollector() *WarningCollector {
	return &WarningCollector{}
}

// PrintWarnings prints collected warnings after a blank line.
// Does nothing if warnings is empty.
func PrintWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	for _, warning := range warnings {
		_, _ = fmt.Fprintln(w, warning)
	}
}
