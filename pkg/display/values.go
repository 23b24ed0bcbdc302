package display

import (
	"strings"

	"github.com/ajxudir/vogue/pkg/constants"
)

// SafeVersionValue returns the trimmed version, or "#N/A" when it is empty.
//
// Example:
//
//	display.SafeVersionValue("1.2.3")  // Returns "1.2.3"
//	display.SafeVersionValue("")       // Returns "#N/A"
func SafeVersionValue(val string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		return constants.PlaceholderNA
	}
	return val
}
