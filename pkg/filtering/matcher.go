package filtering

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/ajxudir/vogue/pkg/verbose"
)

// Matcher tests package identifiers against a pattern.
type Matcher interface {
	// Match reports whether value matches the pattern.
	Match(value string) bool

	// String returns the pattern.
	String() string
}

// regexCache stores compiled patterns keyed by their source.
var regexCache sync.Map

// compile returns the cached compiled form of pattern, compiling and caching
// it on first use.
func compile(pattern string) (*regexp.Regexp, error) {
	if cached, ok := regexCache.Load(pattern); ok {
		if re, typeOK := cached.(*regexp.Regexp); typeOK {
			return re, nil
		}
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	regexCache.Store(pattern, re)
	return re, nil
}

// RegexMatcher matches when the pattern is found anywhere in the value.
//
// Example:
//
//	matcher, _ := filtering.NewRegexMatcher(`^com\.acme:`)
//	matcher.Match("com.acme:core")  // returns true
//	matcher.Match("org.acme:core")  // returns false
type RegexMatcher struct {
	// Pattern is the original regex pattern string.
	Pattern string

	regex *regexp.Regexp
}

// Match reports whether the pattern occurs in value.
func (m *RegexMatcher) Match(value string) bool {
	if m.regex == nil {
		return false
	}
	return m.regex.MatchString(value)
}

// String returns the pattern.
func (m *RegexMatcher) String() string {
	return m.Pattern
}

// NewRegexMatcher creates a regex matcher.
//
// Parameters:
//   - pattern: Regular expression pattern
//
// Returns:
//   - *RegexMatcher: The matcher
//   - error: Compilation error if pattern is invalid
func NewRegexMatcher(pattern string) (*RegexMatcher, error) {
	regex, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexMatcher{Pattern: pattern, regex: regex}, nil
}

// MustRegexMatcher creates a regex matcher, panicking on an invalid pattern.
// Use it only for constant patterns.
func MustRegexMatcher(pattern string) *RegexMatcher {
	m, err := NewRegexMatcher(pattern)
	if err != nil {
		panic("invalid regex pattern: " + err.Error())
	}
	return m
}

// FirstMatch returns the index of the first pattern that matches value, or
// -1 when none does.
//
// Patterns are tried in order and the scan stops at the first match, so a
// pattern that fails to compile is only reported when it is reached.
//
// Parameters:
//   - value: The package identifier, "<group>:<name>"
//   - patterns: Package-rule patterns in precedence order
//
// Returns:
//   - int: Index of the first matching pattern, -1 if none matches
//   - error: When a pattern tried before any match fails to compile
func FirstMatch(value string, patterns []string) (int, error) {
	for i, pattern := range patterns {
		m, err := NewRegexMatcher(pattern)
		if err != nil {
			return -1, fmt.Errorf("invalid package pattern %q: %w", pattern, err)
		}
		if m.Match(value) {
			verbose.Tracef("Pattern %q matched %s", pattern, value)
			return i, nil
		}
	}
	return -1, nil
}
