package filtering

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrRegexTooComplex is returned for patterns with constructs that backtrack
// super-linearly in non-RE2 engines.
var ErrRegexTooComplex = errors.New("regex pattern too complex")

// MaxPatternLength is the longest accepted package pattern.
const MaxPatternLength = 1000

const maxQuantifiers = 15

var (
	nestedQuantifiers = regexp.MustCompile(`\([^)]*(?:\.\*|\.\+|\\w\*|\\w\+|\\s\*|\\s\+)[^)]*\)[+*]`)
	simpleNested      = regexp.MustCompile(`\([a-zA-Z][+*]\)[+*]`)
	overlappingAlts   = regexp.MustCompile(`\(([^|)]+)\|([^)]+)\)[+*]`)
)

// ValidateRegexSafety checks pattern for common super-linear constructs.
//
// It performs the following operations:
//   - Step 1: Rejects patterns longer than MaxPatternLength
//   - Step 2: Rejects nested quantifiers such as (.*)+ or (a+)+
//   - Step 3: Rejects quantified alternatives where one branch prefixes the other
//   - Step 4: Rejects patterns with more than 15 quantifiers
//
// Returns:
//   - error: nil if the pattern looks safe, otherwise wraps ErrRegexTooComplex
func ValidateRegexSafety(pattern string) error {
	if len(pattern) > MaxPatternLength {
		return fmt.Errorf("%w: length %d exceeds maximum %d", ErrRegexTooComplex, len(pattern), MaxPatternLength)
	}
	if nestedQuantifiers.MatchString(pattern) || simpleNested.MatchString(pattern) {
		return fmt.Errorf("%w: nested quantifiers", ErrRegexTooComplex)
	}
	if m := overlappingAlts.FindStringSubmatch(pattern); len(m) >= 3 {
		if strings.HasPrefix(m[1], m[2]) || strings.HasPrefix(m[2], m[1]) {
			return fmt.Errorf("%w: overlapping alternatives with quantifiers", ErrRegexTooComplex)
		}
	}
	if n := strings.Count(pattern, "+") + strings.Count(pattern, "*"); n > maxQuantifiers {
		return fmt.Errorf("%w: %d quantifiers, max %d", ErrRegexTooComplex, n, maxQuantifiers)
	}
	return nil
}
