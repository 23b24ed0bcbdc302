package config

import (
	"strings"
	"time"
)

// DateLayout is the canonical suppressUntil format. yyyy/MM/dd is accepted on input.
const DateLayout = "2006-01-02"

// ParseDate parses a suppressUntil value in yyyy-MM-dd or yyyy/MM/dd form.
// The result is midnight UTC of that day.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.ReplaceAll(strings.TrimSpace(value), "/", "-"))
}

// FormatDate renders t as yyyy-MM-dd.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SuppressUntilDate parses the rule's suppressUntil value.
func (p PackageRule) SuppressUntilDate() (time.Time, error) {
	return ParseDate(p.SuppressUntil)
}
