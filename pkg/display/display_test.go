package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/vogue/pkg/constants"
	"github.com/ajxudir/vogue/pkg/display/colors"
	"github.com/ajxudir/vogue/pkg/errors"
	"github.com/ajxudir/vogue/pkg/policy"
	"github.com/ajxudir/vogue/pkg/version"
)

func evaluated(id, current, latest string, tier version.Tier) policy.DependencyContext {
	group, name, _ := strings.Cut(id, ":")
	return policy.DependencyContext{
		Dependency:    policy.Dependency{Group: group, Name: name, Current: current, Latest: latest},
		Current:       version.MustParse(current),
		Latest:        version.MustParse(latest),
		TierAvailable: tier,
	}
}

func sampleReport() *policy.Report {
	violation := evaluated("com.acme:core", "1.2.0", "3.0.0", version.TierMajor)
	violation.Violations = policy.TierSet(0).With(version.TierMajor)
	violation.MatchedPattern = "com.acme:.*"

	suppressed := evaluated("io.netty:netty-all", "4.1.0", "5.0.0", version.TierMajor)
	suppressed.SuppressedUntil = "2024-07-01"

	return &policy.Report{
		UpToDate: []policy.Dependency{{Group: "org.slf4j", Name: "slf4j-api", Current: "2.0.9"}},
		Outdated: []policy.DependencyContext{
			evaluated("org.junit:junit", "5.9.0", "5.10.1", version.TierMinor),
			violation,
			suppressed,
			evaluated("org.junit:junit-bom", "5.9.0", "5.9.0.1", version.TierPatch),
			evaluated("com.google:guava", "31.0", "32.1", version.TierMajor),
		},
	}
}

// TestRenderReport tests the behavior of RenderReport.
//
// It verifies:
//   - Sections appear in order up to date, suppressed, warnings, errors
//   - Upgrades are grouped by tier from MAJOR to PATCH
//   - A plain palette emits no escape sequences
func TestRenderReport(t *testing.T) {
	expected := strings.Join([]string{
		"Up To Date:",
		" - org.slf4j:slf4j-api [2.0.9]",
		"",
		"Suppressed (until the listed date):",
		" - io.netty:netty-all [4.1.0 -> 5.0.0] until 2024-07-01",
		"",
		"Warnings (should be upgraded ASAP):",
		"MAJOR version upgrades available:",
		" - com.google:guava [31.0 -> 32.1]",
		"",
		"MINOR version upgrades available:",
		" - org.junit:junit [5.9.0 -> 5.10.1]",
		"",
		"PATCH version upgrades available:",
		" - org.junit:junit-bom [5.9.0 -> 5.9.0.1]",
		"",
		"",
		"Errors (must be upgraded)",
		"MAJOR version upgrades available:",
		" - com.acme:core [1.2.0 -> 3.0.0]",
		"",
		"",
	}, "\n")

	assert.Equal(t, expected, RenderReport(sampleReport(), colors.Palette{}))
}

// TestRenderReportSections tests that empty sections are omitted.
func TestRenderReportSections(t *testing.T) {
	t.Run("nil report", func(t *testing.T) {
		assert.Empty(t, RenderReport(nil, colors.Palette{}))
	})

	t.Run("only up to date", func(t *testing.T) {
		out := RenderReport(&policy.Report{
			UpToDate: []policy.Dependency{{Group: "a", Name: "b", Current: "1.0"}},
		}, colors.Palette{})
		assert.Equal(t, "Up To Date:\n - a:b [1.0]\n\n", out)
	})

	t.Run("violations only", func(t *testing.T) {
		c := evaluated("a:b", "1.0.0", "1.0.5", version.TierMicro)
		c.Violations = policy.TierSet(0).With(version.TierMicro)
		out := RenderReport(&policy.Report{Outdated: []policy.DependencyContext{c}}, colors.Palette{})
		assert.NotContains(t, out, HeadingUpToDate)
		assert.NotContains(t, out, HeadingWarnings)
		assert.Contains(t, out, HeadingErrors)
		assert.Contains(t, out, "MICRO version upgrades available:\n - a:b [1.0.0 -> 1.0.5]")
	})
}

// TestRenderReportColors tests coloured output.
func TestRenderReportColors(t *testing.T) {
	out := RenderReport(sampleReport(), colors.NewPalette(true))
	assert.Contains(t, out, "\x1b[36mUp To Date:\x1b[0m")
	assert.Contains(t, out, "\x1b[31mcom.acme:core\x1b[0m")
	assert.Contains(t, out, "\x1b[33morg.junit:junit\x1b[0m")
	assert.Contains(t, out, "\x1b[32mMAJOR\x1b[0m version upgrades available:")
}

// TestStaleSuppressionsMessage tests the stale suppression text.
func TestStaleSuppressionsMessage(t *testing.T) {
	assert.Empty(t, StaleSuppressionsMessage(nil, colors.Palette{}))

	out := StaleSuppressionsMessage([]errors.StaleSuppression{
		{Package: "com.acme:core", SuppressUntil: "2024-01-31", DaysAgo: 12},
		{Package: "io.netty:.*", SuppressUntil: "2024/02/01", DaysAgo: 1},
	}, colors.Palette{})

	assert.Equal(t, "The following suppressions have gone stale. Please either remove them from the .vogue.yml or update the suppressUntil date.\n"+
		" -> com.acme:core expired on 2024-01-31 (12 days ago)\n"+
		" -> io.netty:.* expired on 2024/02/01 (1 days ago)\n", out)
}

// TestViolationsMessage tests the violation failure text.
func TestViolationsMessage(t *testing.T) {
	assert.Equal(t, "There are 3 rule violations that must be fixed. Please refer to the report output above.",
		ViolationsMessage(3, colors.Palette{}))
}

// TestPrintSkipped tests the behavior of PrintSkipped.
func TestPrintSkipped(t *testing.T) {
	var buf bytes.Buffer
	PrintSkipped(&buf, nil, "pre-release")
	assert.Empty(t, buf.String())

	PrintSkipped(&buf, []policy.Dependency{{Group: "a", Name: "b", Current: "1.0", Latest: "2.0-rc.1"}}, "pre-release")
	assert.Equal(t, "\n"+constants.IconIgnored+" Skipped (pre-release): a:b [1.0 -> 2.0-rc.1]\n", buf.String())
}

// TestPrintSummary tests the behavior of PrintSummary.
func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, nil)
	assert.Empty(t, buf.String())

	PrintSummary(&buf, sampleReport())
	assert.Equal(t, "Summary: 1 up to date, 3 warnings, 1 violations, 1 suppressed\n", buf.String())
}

// TestWarningCollector tests the behavior of WarningCollector.
//
// It verifies:
//   - Written lines are split, trimmed and blank lines dropped
//   - Messages returns a copy
//   - Reset clears the collector
func TestWarningCollector(t *testing.T) {
	c := NewWarningCollector()
	n, err := c.Write([]byte("Warning: one\n\n  Warning: two  \n"))
	require.NoError(t, err)
	assert.Equal(t, 31, n)
	assert.Equal(t, []string{"Warning: one", "Warning: two"}, c.Messages())

	msgs := c.Messages()
	msgs[0] = "changed"
	assert.Equal(t, "Warning: one", c.Messages()[0])

	var buf bytes.Buffer
	PrintWarnings(&buf, c.Messages())
	assert.Equal(t, "\nWarning: one\nWarning: two\n", buf.String())

	c.Reset()
	assert.Empty(t, c.Messages())
	buf.Reset()
	PrintWarnings(&buf, c.Messages())
	assert.Empty(t, buf.String())
}

// TestFormatStatus tests status icons.
func TestFormatStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{constants.StatusUpToDate, constants.IconSuccess + " UpToDate"},
		{constants.StatusWarning, constants.IconWarning + " Warning"},
		{constants.StatusViolation, constants.IconError + " Violation"},
		{constants.StatusSuppressed, constants.IconPending + " Suppressed"},
		{constants.StatusSkipped, constants.IconIgnored + " Skipped"},
		{"Other", "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatStatus(tt.status))
		})
	}
}

// TestValues tests the value formatting helpers.
func TestValues(t *testing.T) {
	assert.Equal(t, "1.2.3", SafeVersionValue(" 1.2.3 "))
	assert.Equal(t, constants.PlaceholderNA, SafeVersionValue(""))
}

// TestNewReportTable tests the report table.
//
// It verifies:
//   - One row per dependency, up to date first
//   - The RULE column is hidden unless requested
func TestNewReportTable(t *testing.T) {
	table := NewReportTable(sampleReport(), false)
	assert.Equal(t, 6, table.RowCount())
	assert.Equal(t, 6, table.VisibleColumnCount())

	out := table.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "STATUS"))
	assert.Contains(t, lines[2], "org.slf4j:slf4j-api")
	assert.Contains(t, lines[4], "com.acme:core")
	assert.Contains(t, lines[4], "MAJOR")
	assert.NotContains(t, out, "com.acme:.*")

	withRule := NewReportTable(sampleReport(), true).String()
	assert.Contains(t, withRule, "RULE")
	assert.Contains(t, withRule, "com.acme:.*")

	var buf bytes.Buffer
	WriteReportTable(&buf, nil, false)
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}
