package display

import (
	"fmt"
	"strings"

	"github.com/ajxudir/vogue/pkg/display/colors"
	"github.com/ajxudir/vogue/pkg/policy"
	"github.com/ajxudir/vogue/pkg/version"
)

// Section headings of the text report.
const (
	HeadingUpToDate   = "Up To Date:"
	HeadingSuppressed = "Suppressed (until the listed date):"
	HeadingWarnings   = "Warnings (should be upgraded ASAP):"
	HeadingErrors     = "Errors (must be upgraded)"
)

// RenderReport renders report as plain text.
//
// Sections appear in the order up to date, suppressed, warnings, errors and
// are omitted when empty. Warnings and errors are grouped by available tier
// from MAJOR down to PATCH, keeping report order within each group.
//
// Parameters:
//   - report: The evaluated report; nil renders as ""
//   - p: Palette used for colouring
//
// Returns:
//   - string: The rendered report
func RenderReport(report *policy.Report, p colors.Palette) string {
	if report == nil {
		return ""
	}

	var sb strings.Builder

	if len(report.UpToDate) > 0 {
		sb.WriteString(p.Cyan(HeadingUpToDate) + "\n")
		for _, dep := range report.UpToDate {
			fmt.Fprintf(&sb, " - %s [%s]\n", p.Green(dep.ID()), p.Green(SafeVersionValue(dep.Current)))
		}
		sb.WriteString("\n")
	}

	if suppressed := report.Suppressed(); len(suppressed) > 0 {
		sb.WriteString(p.Cyan(HeadingSuppressed) + "\n")
		for _, c := range suppressed {
			fmt.Fprintf(&sb, " - %s [%s] until %s\n", p.Yellow(c.ID()), versionChange(c, p), p.Yellow(c.SuppressedUntil))
		}
		sb.WriteString("\n")
	}

	if warnings := report.Warnings(); len(warnings) > 0 {
		sb.WriteString(p.Cyan(HeadingWarnings) + "\n")
		writeTierGroups(&sb, warnings, p, p.Yellow)
		sb.WriteString("\n")
	}

	if violations := report.Violations(); len(violations) > 0 {
		sb.WriteString(p.Cyan(HeadingErrors) + "\n")
		writeTierGroups(&sb, violations, p, p.Red)
	}

	return sb.String()
}

// writeTierGroups writes one block per tier present in contexts.
func writeTierGroups(sb *strings.Builder, contexts []policy.DependencyContext, p colors.Palette, pkgColor func(string) string) {
	groups := policy.ByTier(contexts)
	for _, tier := range version.Tiers {
		group := groups[tier]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(sb, "%s version upgrades available:\n", p.Green(tier.String()))
		for _, c := range group {
			fmt.Fprintf(sb, " - %s [%s]\n", pkgColor(c.ID()), versionChange(c, p))
		}
		sb.WriteString("\n")
	}
}

func versionChange(c policy.DependencyContext, p colors.Palette) string {
	return p.Green(SafeVersionValue(c.Dependency.Current)) + " -> " + p.Green(SafeVersionValue(c.Dependency.Latest))
}
