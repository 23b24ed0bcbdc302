package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/vogue/pkg/constants"
	"github.com/ajxudir/vogue/pkg/version"
)

// CSVHeaders are the columns of CSV report output.
var CSVHeaders = []string{"PACKAGE", "CURRENT", "LATEST", "TIER", "DIFF", "STATUS", "VIOLATIONS", "SUPPRESSED_UNTIL", "RULE"}

// WriteReportResult writes result in a structured format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: FormatJSON, FormatXML or FormatCSV
//   - result: Report data to write
//
// Returns:
//   - error: When format is unsupported or the write fails
func WriteReportResult(w io.Writer, format Format, result *ReportResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(reportJSON(result))
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeReportCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// reportJSON lays the result out with a fixed key order: summary, upToDate,
// one key per tier from major to patch, suppressed, skipped, errors. Tier
// keys are present only when they have entries.
func reportJSON(result *ReportResult) *orderedmap.OrderedMap {
	data := orderedmap.New()
	data.Set("summary", result.Summary)

	byTier := make(map[string][]DependencyEntry)
	var upToDate, suppressed, skipped []DependencyEntry
	for _, entry := range result.Dependencies {
		switch entry.Status {
		case constants.StatusSuppressed:
			suppressed = append(suppressed, entry)
		case constants.StatusUpToDate:
			upToDate = append(upToDate, entry)
		case constants.StatusSkipped:
			skipped = append(skipped, entry)
		default:
			byTier[entry.Tier] = append(byTier[entry.Tier], entry)
		}
	}

	data.Set("upToDate", nonNil(upToDate))
	for _, tier := range version.Tiers {
		if entries := byTier[tier.String()]; len(entries) > 0 {
			data.Set(tier.Key(), entries)
		}
	}
	if len(suppressed) > 0 {
		data.Set("suppressed", suppressed)
	}
	if len(skipped) > 0 {
		data.Set("skipped", skipped)
	}
	if len(result.Errors) > 0 {
		data.Set("errors", result.Errors)
	}
	return data
}

func nonNil(entries []DependencyEntry) []DependencyEntry {
	if entries == nil {
		return []DependencyEntry{}
	}
	return entries
}

func writeReportCSV(f *Formatter, result *ReportResult) error {
	rows := make([][]string, 0, len(result.Dependencies))
	for _, e := range result.Dependencies {
		diff := ""
		if e.Tier != "" {
			diff = strconv.Itoa(e.Diff)
		}
		rows = append(rows, []string{
			e.Package, e.Current, e.Latest, e.Tier, diff, e.Status,
			strings.Join(e.Violations, ";"), e.SuppressedUntil, e.Rule,
		})
	}
	return f.WriteCSV(CSVHeaders, rows)
}
