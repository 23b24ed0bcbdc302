package display

import (
	"fmt"

	"github.com/ajxudir/vogue/pkg/constants"
)

// StatusIcon returns the icon for a status, or "" when unknown.
func StatusIcon(status string) string {
	switch status {
	case constants.StatusUpToDate:
		return constants.IconSuccess
	case constants.StatusWarning:
		return constants.IconWarning
	case constants.StatusViolation:
		return constants.IconError
	case constants.StatusSuppressed:
		return constants.IconPending
	case constants.StatusSkipped:
		return constants.IconIgnored
	default:
		return ""
	}
}

// FormatStatus prefixes a status with its icon.
//
// Example:
//
//	display.FormatStatus("Violation")   // Returns "❌ Violation"
//	display.FormatStatus("Unknown")     // Returns "Unknown"
func FormatStatus(status string) string {
	icon := StatusIcon(status)
	if icon == "" {
		return status
	}
	return fmt.Sprintf("%s %s", icon, status)
}
