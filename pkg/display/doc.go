// Package display renders evaluated dependency reports for the terminal.
//
// Report Rendering:
//
// RenderReport produces the plain-text report in sections:
//
//	Up To Date:
//	 - org.slf4j:slf4j-api [2.0.9]
//
//	Warnings (should be upgraded ASAP):
//	MINOR version upgrades available:
//	 - com.acme:core [1.2.0 -> 1.4.0]
//
// Colours:
//
// All rendering goes through a colors.Palette; the zero Palette emits plain
// text. Use colors.ColorEnabled to honour --no-color and NO_COLOR:
//
//	p := colors.NewPalette(colors.ColorEnabled(noColor))
//	fmt.Print(display.RenderReport(report, p))
//
// Messages:
//
// StaleSuppressionsMessage and ViolationsMessage build the failure text the
// report command prints before exiting. For table output, see
// NewReportTable which builds on pkg/output.
package display
