package suppression

import (
	"time"

	"github.com/ajxudir/vogue/pkg/config"
	"github.com/ajxudir/vogue/pkg/errors"
)

const (
	// MaxMonthsAhead bounds how far in the future a suppression may end.
	MaxMonthsAhead = 3

	// DefaultDays is the suppression length offered by the interactive workflow.
	DefaultDays = 5
)

// Today returns the calendar day of now as midnight UTC, comparable with
// the values returned by config.ParseDate.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds months to a calendar day, clamping to the last day of the
// target month: 2024-11-30 plus 3 months is 2025-02-28.
func AddMonths(day time.Time, months int) time.Time {
	y, m, d := day.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, day.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, day.Location())
}

// Horizon returns the latest acceptable suppressUntil day for now.
func Horizon(now time.Time) time.Time {
	return AddMonths(Today(now), MaxMonthsAhead)
}

// DefaultUntil returns the suppressUntil date proposed by the workflow.
func DefaultUntil(now time.Time) string {
	return config.FormatDate(Today(now).AddDate(0, 0, DefaultDays))
}

// Check validates a suppressUntil value and reports whether it is in force.
//
// It performs the following operations:
//   - Step 1: Parses value as yyyy-MM-dd or yyyy/MM/dd
//   - Step 2: Rejects dates more than MaxMonthsAhead months after today
//   - Step 3: Reports active only for dates strictly after today
//
// A date of today or earlier is expired, not invalid.
//
// Parameters:
//   - value: The configured suppressUntil value
//   - now: The evaluation time
//
// Returns:
//   - bool: true if the suppression is active
//   - error: *errors.InvalidSuppressionDateError when the date is unusable
func Check(value string, now time.Time) (bool, error) {
	until, err := config.ParseDate(value)
	if err != nil {
		return false, &errors.InvalidSuppressionDateError{
			Value:  value,
			Reason: errors.SuppressionDateUnparsable,
			Err:    err,
		}
	}
	if until.After(Horizon(now)) {
		return false, &errors.InvalidSuppressionDateError{
			Value:     value,
			Reason:    errors.SuppressionDateTooFar,
			MaxMonths: MaxMonthsAhead,
		}
	}
	return until.After(Today(now)), nil
}

// validChoice reports whether a date entered in the workflow can be used:
// it must parse and satisfy today < date <= today+MaxMonthsAhead.
func validChoice(value string, now time.Time) bool {
	until, err := config.ParseDate(value)
	if err != nil {
		return false
	}
	return until.After(Today(now)) && !until.After(Horizon(now))
}
