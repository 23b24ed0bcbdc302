// Package output writes evaluated reports as text tables or structured
// documents (JSON, CSV, XML).
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Format identifies an output format.
type Format string

const (
	// FormatText is the sectioned plain-text report (default).
	FormatText Format = "text"

	// FormatTable is a single aligned table of every dependency.
	FormatTable Format = "table"

	// FormatCSV outputs data in CSV format.
	FormatCSV Format = "csv"

	// FormatJSON outputs data in JSON format.
	FormatJSON Format = "json"

	// FormatXML outputs data in XML format.
	FormatXML Format = "xml"
)

// ParseFormat converts a flag value to a Format.
//
// Matching is case-insensitive and an empty value selects FormatText.
//
// Parameters:
//   - s: The --output flag value
//
// Returns:
//   - Format: The parsed format, or FormatText when unknown
//   - bool: false when s names no known format
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, true
	case FormatTable:
		return FormatTable, true
	case FormatCSV:
		return FormatCSV, true
	case FormatJSON:
		return FormatJSON, true
	case FormatXML:
		return FormatXML, true
	default:
		return FormatText, false
	}
}

// IsStructuredFormat reports whether f is a machine-readable format.
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML
}

// Formatter writes structured data to a writer.
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a Formatter for format writing to writer.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Format returns the formatter's format.
func (f *Formatter) Format() Format {
	return f.format
}

// WriteCSV writes a header row followed by rows.
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteJSON writes data as indented JSON.
//
// It performs the following operations:
//   - Step 1: Disables HTML escaping on ordered maps, nested ones included
//   - Step 2: Encodes data with two-space indentation into a buffer
//   - Step 3: Writes the buffer to the formatter's writer
//
// Parameters:
//   - data: Any JSON-marshalable value; *orderedmap.OrderedMap keeps insertion order
//
// Returns:
//   - error: Encoding or write failure
func (f *Formatter) WriteJSON(data any) error {
	if ordered, ok := data.(*orderedmap.OrderedMap); ok {
		disableOrderedMapEscape(ordered)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, err := f.writer.Write(buf.Bytes())
	return err
}

// WriteXML writes data as indented XML with the standard header.
//
// Parameters:
//   - data: Any XML-marshalable value
//
// Returns:
//   - error: Encoding or write failure
func (f *Formatter) WriteXML(data any) error {
	if _, err := fmt.Fprint(f.writer, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, err := fmt.Fprintln(f.writer)
	return err
}

func disableOrderedMapEscape(m *orderedmap.OrderedMap) {
	m.SetEscapeHTML(false)
	for _, key := range m.Keys() {
		val, _ := m.Get(key)
		if nested, ok := val.(*orderedmap.OrderedMap); ok {
			disableOrderedMapEscape(nested)
		}
	}
}
