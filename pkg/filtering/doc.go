// Package filtering matches package identifiers against the regular
// expressions used as package-rule patterns.
//
// Patterns are unanchored: a pattern matches when it matches any substring of
// the "<group>:<name>" identifier, so "acme" matches "com.acme:core". Anchor
// with ^ and $ for exact matches.
//
//	idx, err := filtering.FirstMatch("com.acme:core", []string{"^org\\.", "acme"})
//	// idx == 1
//
// Compiled patterns are cached process-wide since the same package rules are
// matched against every dependency of a report.
package filtering
