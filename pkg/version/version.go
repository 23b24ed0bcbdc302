// Package version parses dotted numeric version strings into four-component
// tuples and classifies the difference between two of them by tier.
//
// Comparison is purely positional. Pre-release and build qualifiers are
// stripped before parsing and take no part in ordering.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/ajxudir/vogue/pkg/errors"
	"github.com/ajxudir/vogue/pkg/verbose"
)

// componentCount is the number of positional components in a Version.
const componentCount = 4

var leadingDigitsRegex = regexp.MustCompile(`^\d+`)

// Version is an immutable four-component version tuple.
//
// Fields:
//   - Major: First component
//   - Minor: Second component
//   - Micro: Third component
//   - Patch: Fourth component
type Version struct {
	Major int
	Minor int
	Micro int
	Patch int
}

// Parse parses a dotted numeric version string into a Version.
//
// It performs the following operations:
//   - Step 1: Trims whitespace and an optional "v" prefix
//   - Step 2: Drops everything from the first "-" or "+" (pre-release and build qualifiers)
//   - Step 3: Reads dot-separated integers until a segment carries a letter qualifier ("1.1pre", "5.3.20.RELEASE")
//   - Step 4: Pads missing trailing components with 0; components beyond the fourth are ignored
//
// An empty segment or one starting with anything other than a digit or a
// letter is malformed, so "1..2", "1.2." and "1.-2" are rejected.
//
// Parameters:
//   - raw: The version string (e.g., "1.2", "v2.0.1-rc1", "3.1.4.1")
//
// Returns:
//   - Version: The parsed tuple
//   - error: *errors.MalformedVersionError when no leading numeric component exists or a segment is malformed
func Parse(raw string) (Version, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, "v"), "V")

	if i := strings.IndexAny(cleaned, "-+"); i >= 0 {
		verbose.Tracef("Version parse: stripping qualifier %q from %q", cleaned[i:], raw)
		cleaned = cleaned[:i]
	}
	if cleaned == "" {
		return Version{}, errors.NewMalformedVersionError(raw, fmt.Errorf("no leading numeric component"))
	}

	var parts [componentCount]int
	for i, segment := range strings.Split(cleaned, ".") {
		digits := leadingDigitsRegex.FindString(segment)
		if digits == "" {
			if i > 0 && segment != "" && unicode.IsLetter(rune(segment[0])) {
				break
			}
			if i == 0 {
				return Version{}, errors.NewMalformedVersionError(raw, fmt.Errorf("no leading numeric component"))
			}
			return Version{}, errors.NewMalformedVersionError(raw, fmt.Errorf("malformed segment %d %q", i+1, segment))
		}
		value, err := strconv.Atoi(digits)
		if err != nil {
			return Version{}, errors.NewMalformedVersionError(raw, err)
		}
		if i < componentCount {
			parts[i] = value
		}
		if len(digits) < len(segment) {
			break
		}
	}

	return Version{Major: parts[0], Minor: parts[1], Micro: parts[2], Patch: parts[3]}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for tests
// and constants.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Component returns the value at the given tier's position, or 0 for TierNone.
func (v Version) Component(tier Tier) int {
	pos := tier.Position()
	if pos < 0 {
		return 0
	}
	return [...]int{v.Major, v.Minor, v.Micro, v.Patch}[pos]
}

// String renders the tuple with all four components.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Micro, v.Patch)
}
