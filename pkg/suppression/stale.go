package suppression

import (
	"time"

	"github.com/ajxudir/vogue/pkg/config"
	"github.com/ajxudir/vogue/pkg/errors"
)

// isStale reports whether the rule's suppressUntil parses and lies strictly
// before today.
func isStale(rule config.PackageRule, today time.Time) bool {
	if !rule.HasSuppression() {
		return false
	}
	until, err := rule.SuppressUntilDate()
	if err != nil {
		return false
	}
	return until.Before(today)
}

// FindStale returns the rules whose suppression has expired.
//
// A suppression is stale when its date parses and is strictly before today.
// Rules without a suppression, or with an unparsable date, are never stale.
// The input is not modified.
func FindStale(rules []config.PackageRule, now time.Time) []config.PackageRule {
	today := Today(now)
	var stale []config.PackageRule
	for _, r := range rules {
		if isStale(r, today) {
			stale = append(stale, r.Clone())
		}
	}
	return stale
}

// FilterLive returns the rules FindStale does not: those without a
// suppression, with a date today or later, or with an unparsable date.
// Together the two results partition the input, preserving order.
func FilterLive(rules []config.PackageRule, now time.Time) []config.PackageRule {
	today := Today(now)
	var live []config.PackageRule
	for _, r := range rules {
		if !isStale(r, today) {
			live = append(live, r.Clone())
		}
	}
	return live
}

// StaleError returns an *errors.StaleSuppressionsError describing the stale
// rules in cfg, or nil when there are none.
func StaleError(cfg *config.Configuration, now time.Time) error {
	if cfg == nil {
		return nil
	}
	stale := FindStale(cfg.PackageRules, now)
	if len(stale) == 0 {
		return nil
	}

	today := Today(now)
	err := &errors.StaleSuppressionsError{}
	for _, r := range stale {
		until, _ := r.SuppressUntilDate()
		err.Stale = append(err.Stale, errors.StaleSuppression{
			Package:       r.Package,
			SuppressUntil: r.SuppressUntil,
			DaysAgo:       int(today.Sub(until).Hours() / 24),
		})
	}
	return err
}

// Prune returns a copy of cfg without stale suppressions, plus the removed
// rules. A nil cfg yields nil.
func Prune(cfg *config.Configuration, now time.Time) (*config.Configuration, []config.PackageRule) {
	if cfg == nil {
		return nil, nil
	}
	pruned := cfg.Clone()
	pruned.PackageRules = FilterLive(cfg.PackageRules, now)
	return pruned, FindStale(cfg.PackageRules, now)
}
