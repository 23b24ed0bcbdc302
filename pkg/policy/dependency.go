package policy

import (
	"github.com/ajxudir/vogue/pkg/constants"
	"github.com/ajxudir/vogue/pkg/version"
)

// Dependency is one entry of the dependency feed.
//
// Fields:
//   - Group: Artifact group, e.g. "com.acme"
//   - Name: Artifact name, e.g. "core"
//   - Current: Version in use
//   - Latest: Newest available version, empty for up-to-date entries
type Dependency struct {
	Group   string
	Name    string
	Current string
	Latest  string
}

// ID returns the "<group>:<name>" identifier package rules are matched against.
func (d Dependency) ID() string {
	return d.Group + ":" + d.Name
}

// TierSet is a set of tiers.
type TierSet uint8

func tierBit(t version.Tier) TierSet {
	if t == version.TierNone {
		return 0
	}
	return 1 << uint(t)
}

// With returns the set with t added. Adding TierNone is a no-op.
func (s TierSet) With(t version.Tier) TierSet {
	return s | tierBit(t)
}

// Has reports whether t is in the set.
func (s TierSet) Has(t version.Tier) bool {
	return t != version.TierNone && s&tierBit(t) != 0
}

// IsEmpty reports whether the set has no tiers.
func (s TierSet) IsEmpty() bool {
	return s == 0
}

// Tiers lists the members from most to least significant.
func (s TierSet) Tiers() []version.Tier {
	var tiers []version.Tier
	for _, t := range version.Tiers {
		if s.Has(t) {
			tiers = append(tiers, t)
		}
	}
	return tiers
}

// DependencyContext is the evaluation result for one outdated dependency.
//
// At most one tier is available, and when SuppressedUntil is set no violation
// is recorded.
//
// Fields:
//   - Dependency: The feed entry
//   - Current, Latest: Parsed versions
//   - TierAvailable: Most significant differing tier, TierNone if equal
//   - Violations: Tiers whose rule was exceeded
//   - SuppressedUntil: End date of the active suppression, empty if none
//   - MatchedPattern: Pattern of the package rule that applied, empty if none
type DependencyContext struct {
	Dependency      Dependency
	Current         version.Version
	Latest          version.Version
	TierAvailable   version.Tier
	Violations      TierSet
	SuppressedUntil string
	MatchedPattern  string
}

// ID returns the dependency identifier.
func (c DependencyContext) ID() string {
	return c.Dependency.ID()
}

// IsUpToDate reports whether current and latest are equal in all components.
func (c DependencyContext) IsUpToDate() bool {
	return c.TierAvailable == version.TierNone
}

// IsSuppressed reports whether an active suppression covers the dependency.
func (c DependencyContext) IsSuppressed() bool {
	return c.SuppressedUntil != ""
}

// IsViolation reports whether any tier rule was exceeded.
func (c DependencyContext) IsViolation() bool {
	return !c.Violations.IsEmpty()
}

// IsWarning reports whether an upgrade is available that neither violates
// a rule nor is suppressed.
func (c DependencyContext) IsWarning() bool {
	return !c.IsUpToDate() && !c.IsSuppressed() && !c.IsViolation()
}

// Diff returns the distance between current and latest at the available tier.
func (c DependencyContext) Diff() int {
	return version.Diff(c.Current, c.Latest, c.TierAvailable)
}

// Status returns the report status: suppressed takes precedence, then
// violation, then up to date; anything else outdated is a warning.
func (c DependencyContext) Status() string {
	switch {
	case c.IsSuppressed():
		return constants.StatusSuppressed
	case c.IsViolation():
		return constants.StatusViolation
	case c.IsUpToDate():
		return constants.StatusUpToDate
	default:
		return constants.StatusWarning
	}
}
