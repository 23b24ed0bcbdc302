package version

import "strings"

// Tier identifies which positional component separates two versions.
//
// Tiers are totally ordered: TierMajor > TierMinor > TierMicro > TierPatch.
// TierNone sorts below all of them and means the versions are equal.
type Tier int

const (
	// TierNone means all four components are equal.
	TierNone Tier = iota
	// TierPatch is the fourth component.
	TierPatch
	// TierMicro is the third component.
	TierMicro
	// TierMinor is the second component.
	TierMinor
	// TierMajor is the first component.
	TierMajor
)

// Tiers lists the comparable tiers from most to least significant.
var Tiers = []Tier{TierMajor, TierMinor, TierMicro, TierPatch}

// String returns the upper-case tier name used in reports.
func (t Tier) String() string {
	switch t {
	case TierMajor:
		return "MAJOR"
	case TierMinor:
		return "MINOR"
	case TierMicro:
		return "MICRO"
	case TierPatch:
		return "PATCH"
	default:
		return "NONE"
	}
}

// Key returns the lower-case tier name used in structured output.
func (t Tier) Key() string {
	return strings.ToLower(t.String())
}

// Position returns the zero-based component index of the tier, or -1 for TierNone.
func (t Tier) Position() int {
	switch t {
	case TierMajor:
		return 0
	case TierMinor:
		return 1
	case TierMicro:
		return 2
	case TierPatch:
		return 3
	default:
		return -1
	}
}

// Classify returns the most significant tier at which current and latest differ.
//
// Positions are walked in the fixed order MAJOR, MINOR, MICRO, PATCH and the
// first differing position wins; lower positions are not inspected once a
// difference is found. TierNone is returned when all four components match.
//
// Parameters:
//   - current: The version in use
//   - latest: The newest available version
//
// Returns:
//   - Tier: The tier of the leftmost differing component, or TierNone
//
// Example:
//
//	version.Classify(version.MustParse("1.2.3.4"), version.MustParse("1.2.9.0")) // TierMicro
func Classify(current, latest Version) Tier {
	for _, tier := range Tiers {
		if current.Component(tier) != latest.Component(tier) {
			return tier
		}
	}
	return TierNone
}

// Diff returns latest minus current at the given tier's position.
//
// The result is negative when latest is behind current at that position.
// TierNone always yields 0.
func Diff(current, latest Version, tier Tier) int {
	return latest.Component(tier) - current.Component(tier)
}
