package display

import (
	"io"

	"github.com/ajxudir/vogue/pkg/constants"
	"github.com/ajxudir/vogue/pkg/output"
	"github.com/ajxudir/vogue/pkg/policy"
)

// ColumnDef defines a single table column.
//
// Fields:
//   - Name: Column header text
//   - MinWidth: Minimum column width in characters
//   - MaxWidth: Values wider than this are truncated (0 means unlimited)
//   - Optional: If true, the column is shown only when requested
type ColumnDef struct {
	Name     string
	MinWidth int
	MaxWidth int
	Optional bool
}

// Schema defines a complete table structure.
type Schema struct {
	Columns []ColumnDef
}

// ReportSchema defines the columns of the report table.
// Columns: STATUS, PACKAGE, CURRENT, LATEST, TIER, SUPPRESSED, RULE*
// * RULE is optional
var ReportSchema = Schema{
	Columns: []ColumnDef{
		{Name: "STATUS", MinWidth: 6},
		{Name: "PACKAGE", MinWidth: 7, MaxWidth: 60},
		{Name: "CURRENT", MinWidth: 7},
		{Name: "LATEST", MinWidth: 6},
		{Name: "TIER", MinWidth: 5},
		{Name: "SUPPRESSED", MinWidth: 10},
		{Name: "RULE", MinWidth: 4, MaxWidth: 40, Optional: true},
	},
}

// TableOptions configures table creation from a schema.
//
// Fields:
//   - ShowOptional: Optional column names to show
type TableOptions struct {
	ShowOptional map[string]bool
}

// NewTableFromSchema creates an output.Table from a schema and options.
func NewTableFromSchema(schema Schema, options TableOptions) *output.Table {
	table := output.NewTable()
	for _, col := range schema.Columns {
		if col.Optional {
			table.AddConditionalColumn(col.Name, options.ShowOptional[col.Name])
		} else {
			table.AddColumnWithMinWidth(col.Name, col.MinWidth)
		}
		if col.MaxWidth > 0 {
			table.SetColumnMaxWidth(col.Name, col.MaxWidth)
		}
	}
	return table
}

// NewReportTable fills a report table with every dependency in report: up to
// date first, then outdated in report order. The RULE column is shown when
// showRule is true.
func NewReportTable(report *policy.Report, showRule bool) *output.Table {
	table := NewTableFromSchema(ReportSchema, TableOptions{
		ShowOptional: map[string]bool{"RULE": showRule},
	})
	if report == nil {
		return table
	}

	for _, dep := range report.UpToDate {
		table.AddRow(FormatStatus(constants.StatusUpToDate), dep.ID(), SafeVersionValue(dep.Current),
			SafeVersionValue(dep.Current), "", "", "")
	}
	for _, c := range report.Outdated {
		tier := ""
		if !c.IsUpToDate() {
			tier = c.TierAvailable.String()
		}
		table.AddRow(FormatStatus(c.Status()), c.ID(), SafeVersionValue(c.Dependency.Current),
			SafeVersionValue(c.Dependency.Latest), tier, c.SuppressedUntil, c.MatchedPattern)
	}
	return table
}

// WriteReportTable renders report as a table to w.
func WriteReportTable(w io.Writer, report *policy.Report, showRule bool) {
	NewReportTable(report, showRule).Fprint(w)
}
