package config

import "github.com/ajxudir/vogue/pkg/version"

// NoLimit is the MaxDiff sentinel meaning no numeric tolerance is configured.
const NoLimit = -1

// Rule is the threshold applied to one version tier.
//
// A rule applies when MaxDiff is non-negative or RequireLatest is set. With
// MaxDiff = NoLimit and RequireLatest = true any positive diff violates; an
// explicit non-negative MaxDiff caps the tolerated distance regardless of
// RequireLatest.
type Rule struct {
	MaxDiff       int
	RequireLatest bool
}

// NewRule returns a rule with the default MaxDiff of NoLimit.
func NewRule() *Rule {
	return &Rule{MaxDiff: NoLimit}
}

// Applies reports whether the rule constrains its tier. A nil rule never applies.
func (r *Rule) Applies() bool {
	return r != nil && (r.MaxDiff >= 0 || r.RequireLatest)
}

// Violated reports whether diff exceeds what the rule tolerates.
// Rules that do not apply are never violated.
func (r *Rule) Violated(diff int) bool {
	return r.Applies() && r.MaxDiff < diff
}

// Rules holds at most one Rule per tier. A nil entry means "not configured".
//
// Fields:
//   - Major: Rule for the first component
//   - Minor: Rule for the second component
//   - Micro: Rule for the third component
//   - Patch: Rule for the fourth component
type Rules struct {
	Major *Rule
	Minor *Rule
	Micro *Rule
	Patch *Rule
}

// ForTier returns the rule configured for tier, or nil.
func (r *Rules) ForTier(tier version.Tier) *Rule {
	if r == nil {
		return nil
	}
	switch tier {
	case version.TierMajor:
		return r.Major
	case version.TierMinor:
		return r.Minor
	case version.TierMicro:
		return r.Micro
	case version.TierPatch:
		return r.Patch
	default:
		return nil
	}
}

// IsEmpty reports whether no tier carries a rule.
func (r *Rules) IsEmpty() bool {
	return r == nil || (r.Major == nil && r.Minor == nil && r.Micro == nil && r.Patch == nil)
}

// Clone returns a deep copy of r. Cloning nil yields nil.
func (r *Rules) Clone() *Rules {
	if r == nil {
		return nil
	}
	return &Rules{
		Major: cloneRule(r.Major),
		Minor: cloneRule(r.Minor),
		Micro: cloneRule(r.Micro),
		Patch: cloneRule(r.Patch),
	}
}

func cloneRule(r *Rule) *Rule {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// PackageRule overrides default policy for packages whose "<group>:<name>"
// identifier matches Package as a regular expression.
//
// Fields:
//   - Package: Regular expression matched against "<group>:<name>"
//   - Rules: Tier rules replacing the defaults for matching packages, may be nil
//   - SuppressUntil: End date of a suppression (yyyy-MM-dd or yyyy/MM/dd), empty when absent
//   - Note: Free text, typically a ticket reference
type PackageRule struct {
	Package       string
	Rules         *Rules
	SuppressUntil string
	Note          string
}

// HasSuppression reports whether the rule carries a suppressUntil date.
func (p PackageRule) HasSuppression() bool {
	return p.SuppressUntil != ""
}

// Clone returns a deep copy of p.
func (p PackageRule) Clone() PackageRule {
	p.Rules = p.Rules.Clone()
	return p
}

// Configuration is a policy: default tier rules plus ordered package rules.
//
// PackageRules order encodes precedence: the first matching entry wins.
type Configuration struct {
	DefaultRules *Rules
	PackageRules []PackageRule
}

// Clone returns a deep copy of c. Cloning nil yields nil.
func (c *Configuration) Clone() *Configuration {
	if c == nil {
		return nil
	}
	clone := &Configuration{DefaultRules: c.DefaultRules.Clone()}
	if c.PackageRules != nil {
		clone.PackageRules = make([]PackageRule, len(c.PackageRules))
		for i, rule := range c.PackageRules {
			clone.PackageRules[i] = rule.Clone()
		}
	}
	return clone
}
