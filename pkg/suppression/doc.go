// Package suppression manages time-bounded suppressions: validating
// suppressUntil dates, separating stale suppressions from live ones, and the
// interactive workflow that appends new suppressions to an override policy.
//
// All functions take the current time explicitly so callers (and tests)
// control what "today" is. Dates are compared as calendar days.
package suppression
