package policy

import (
	"fmt"

	"github.com/ajxudir/vogue/pkg/version"
)

// Report is the result of evaluating a dependency feed.
//
// Fields:
//   - UpToDate: Dependencies already at their latest version
//   - Outdated: Evaluated dependencies with an upgrade available, in feed order
type Report struct {
	UpToDate []Dependency
	Outdated []DependencyContext
}

func (r *Report) filter(keep func(DependencyContext) bool) []DependencyContext {
	if r == nil {
		return nil
	}
	var out []DependencyContext
	for _, c := range r.Outdated {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Warnings returns outdated dependencies that are neither violations nor suppressed.
func (r *Report) Warnings() []DependencyContext {
	return r.filter(DependencyContext.IsWarning)
}

// Violations returns dependencies with at least one violated tier rule.
func (r *Report) Violations() []DependencyContext {
	return r.filter(DependencyContext.IsViolation)
}

// Suppressed returns dependencies covered by an active suppression.
func (r *Report) Suppressed() []DependencyContext {
	return r.filter(DependencyContext.IsSuppressed)
}

// HasViolations reports whether any dependency violates the policy.
func (r *Report) HasViolations() bool {
	return len(r.Violations()) > 0
}

// ViolationIDs returns the identifiers of violating dependencies in report order.
func (r *Report) ViolationIDs() []string {
	var ids []string
	for _, c := range r.Violations() {
		ids = append(ids, c.ID())
	}
	return ids
}

// ByTier groups contexts by available tier, preserving order within each tier.
func ByTier(contexts []DependencyContext) map[version.Tier][]DependencyContext {
	groups := make(map[version.Tier][]DependencyContext)
	for _, c := range contexts {
		groups[c.TierAvailable] = append(groups[c.TierAvailable], c)
	}
	return groups
}

// Summary returns a one-line count of the report's categories.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d up to date, %d warnings, %d violations, %d suppressed",
		len(r.UpToDate), len(r.Warnings()), len(r.Violations()), len(r.Suppressed()))
}
