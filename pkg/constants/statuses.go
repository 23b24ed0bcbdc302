// Package constants provides centralized string constants used throughout the application.
// Status names and icons live here so the text renderer, the table and the
// structured writers agree on them.
package constants

// Report status constants classify an evaluated dependency.
const (
	// StatusUpToDate indicates the dependency is already at its latest version.
	StatusUpToDate = "UpToDate"

	// StatusWarning indicates an upgrade is available within the configured limits.
	StatusWarning = "Warning"

	// StatusViolation indicates at least one tier rule was exceeded.
	StatusViolation = "Violation"

	// StatusSuppressed indicates an active suppression covers the dependency.
	StatusSuppressed = "Suppressed"

	// StatusSkipped indicates the dependency was left out of evaluation
	// (pre-release latest version).
	StatusSkipped = "Skipped"
)

// Placeholder values for display when data is not available.
const (
	// PlaceholderNA is used when a value is not available.
	PlaceholderNA = "#N/A"
)

// Icon constants for status display.
const (
	// IconSuccess marks up-to-date dependencies.
	IconSuccess = "🟢"

	// IconWarning marks upgrades that should be applied soon.
	IconWarning = "🟠"

	// IconError marks rule violations.
	IconError = "❌"

	// IconPending marks suppressed violations.
	IconPending = "🟡"

	// IconIgnored marks skipped dependencies.
	IconIgnored = "🚫"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconCheckmarkBox indicates successful validation.
	IconCheckmarkBox = "✅"
)

// Configuration file names.
const (
	// OverrideFileName is the per-project override policy.
	OverrideFileName = ".vogue.yml"
)
