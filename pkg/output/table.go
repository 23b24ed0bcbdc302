package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/vogue/pkg/utils"
)

// Column is a single table column.
//
// Fields:
//   - Header: Header text
//   - Width: Current display width, grown by AddRow
//   - MaxWidth: Cells wider than this are truncated (0 means unlimited)
type Column struct {
	Header   string
	Width    int
	MaxWidth int
	hidden   bool
}

// Table buffers rows and renders them with aligned, Unicode-aware column
// widths. Hidden columns keep their values but are left out of rendering.
type Table struct {
	columns   []Column
	rows      [][]string
	separator string
}

// NewTable creates an empty table with a two-space column separator.
func NewTable() *Table {
	return &Table{separator: "  "}
}

// AddColumn appends a column sized to its header.
func (t *Table) AddColumn(header string) *Table {
	return t.AddColumnWithMinWidth(header, 0)
}

// AddColumnWithMinWidth appends a column at least minWidth cells wide.
func (t *Table) AddColumnWithMinWidth(header string, minWidth int) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.Max(utils.DisplayWidth(header), minWidth),
	})
	return t
}

// AddConditionalColumn appends a column that is rendered only when visible.
func (t *Table) AddConditionalColumn(header string, visible bool) *Table {
	t.AddColumn(header)
	t.columns[len(t.columns)-1].hidden = !visible
	return t
}

// SetColumnMaxWidth caps the width of the column named header.
func (t *Table) SetColumnMaxWidth(header string, maxWidth int) *Table {
	for i := range t.columns {
		if t.columns[i].Header == header {
			t.columns[i].MaxWidth = maxWidth
		}
	}
	return t
}

// SetColumnVisibleByHeader shows or hides the column named header.
func (t *Table) SetColumnVisibleByHeader(header string, visible bool) *Table {
	for i := range t.columns {
		if t.columns[i].Header == header {
			t.columns[i].hidden = !visible
			break
		}
	}
	return t
}

// AddRow buffers a row and grows column widths to fit it.
//
// It performs the following operations:
//   - Step 1: Takes one value per column, hidden columns included
//   - Step 2: Leaves missing values blank and drops extra values
//   - Step 3: Truncates values wider than the column's MaxWidth
//   - Step 4: Widens each column to its widest value
//
// Parameters:
//   - values: Cell values in column order
//
// Returns:
//   - *Table: The table, for chaining
func (t *Table) AddRow(values ...string) *Table {
	row := make([]string, len(t.columns))
	for i := range t.columns {
		if i >= len(values) {
			continue
		}
		val := values[i]
		if limit := t.columns[i].MaxWidth; limit > 0 {
			val = utils.Truncate(val, limit)
		}
		row[i] = val
		if width := utils.DisplayWidth(val); width > t.columns[i].Width {
			t.columns[i].Width = width
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// RowCount returns the number of buffered rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// HeaderRow returns the formatted header line.
func (t *Table) HeaderRow() string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header
	}
	return t.FormatRow(headers...)
}

// SeparatorRow returns a dashed line under each visible column.
func (t *Table) SeparatorRow() string {
	dashes := make([]string, len(t.columns))
	for i, col := range t.columns {
		dashes[i] = strings.Repeat("-", col.Width)
	}
	return t.FormatRow(dashes...)
}

// FormatRow formats a single row with proper column alignment.
//
// It performs the following operations:
//   - Step 1: Skips hidden columns
//   - Step 2: Pads each value to its column width (blank when missing)
//   - Step 3: Joins the cells with the separator and trims trailing padding
//
// Parameters:
//   - values: Cell values in column order
//
// Returns:
//   - string: The aligned row
func (t *Table) FormatRow(values ...string) string {
	var parts []string
	for i, col := range t.columns {
		if col.hidden {
			continue
		}
		val := ""
		if i < len(values) {
			val = values[i]
		}
		parts = append(parts, utils.ToWidth(val, col.Width))
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// VisibleColumnCount returns the number of rendered columns.
func (t *Table) VisibleColumnCount() int {
	count := 0
	for _, col := range t.columns {
		if !col.hidden {
			count++
		}
	}
	return count
}

// GetColumnWidthByHeader returns the width of the column named header, or 0.
func (t *Table) GetColumnWidthByHeader(header string) int {
	for _, col := range t.columns {
		if col.Header == header {
			return col.Width
		}
	}
	return 0
}

// Fprint renders the header, separator and buffered rows to w.
//
// Parameters:
//   - w: Destination writer; write errors are ignored
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, t.HeaderRow())
	_, _ = fmt.Fprintln(w, t.SeparatorRow())
	for _, row := range t.rows {
		_, _ = fmt.Fprintln(w, t.FormatRow(row...))
	}
}

// String renders the table as Fprint would.
func (t *Table) String() string {
	var sb strings.Builder
	t.Fprint(&sb)
	return sb.String()
}
