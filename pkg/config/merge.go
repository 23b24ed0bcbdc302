package config

import "github.com/ajxudir/vogue/pkg/verbose"

// Merge combines a base policy with an override policy, override taking precedence.
//
// Neither input is modified; the result shares no memory with them, so the
// merged policy used for evaluation can never alias the override policy that
// is later persisted.
//
// It performs the following operations:
//   - Step 1: Deep-copies base (a nil base starts from an empty policy)
//   - Step 2: Overlays override default rules tier by tier (see mergeRules)
//   - Step 3: Merges each override package rule into the entry with the exactly
//     equal pattern, or inserts it at index 0 when no such entry exists
//
// Parameters:
//   - base: The base policy (usually the embedded default)
//   - override: The user policy; nil behaves like an empty policy
//
// Returns:
//   - *Configuration: The merged policy
func Merge(base, override *Configuration) *Configuration {
	merged := base.Clone()
	if merged == nil {
		merged = &Configuration{}
	}
	if override == nil {
		return merged
	}

	if override.DefaultRules != nil {
		if merged.DefaultRules == nil {
			merged.DefaultRules = &Rules{}
		}
		mergeRules(merged.DefaultRules, override.DefaultRules)
	}

	for _, rule := range override.PackageRules {
		merged.PackageRules = mergePackageRule(merged.PackageRules, rule.Clone())
	}

	return merged
}

// mergePackageRule merges override into the entry whose pattern string equals
// override.Package, or prepends override so it takes precedence over every
// existing entry, including broader patterns that would also match.
//
// Parameters:
//   - rules: The package rules being built
//   - override: A package rule from the override policy (already cloned)
//
// Returns:
//   - []PackageRule: The updated slice
func mergePackageRule(rules []PackageRule, override PackageRule) []PackageRule {
	for i := range rules {
		if rules[i].Package != override.Package {
			continue
		}

		target := &rules[i]
		if override.Rules != nil {
			if target.Rules == nil {
				target.Rules = &Rules{}
			}
			mergeRules(target.Rules, override.Rules)
		}
		if override.SuppressUntil != "" {
			target.SuppressUntil = override.SuppressUntil
		}
		if override.Note != "" {
			target.Note = override.Note
		}
		verbose.Printf("Package rule %q: merged with existing rule", override.Package)
		return rules
	}

	verbose.Printf("Package rule %q: added with highest precedence", override.Package)
	return append([]PackageRule{override}, rules...)
}

// mergeRules overwrites each tier of base whose override rule is present.
// Tiers absent from override keep the base rule.
func mergeRules(base, override *Rules) {
	if override.Major != nil {
		base.Major = cloneRule(override.Major)
	}
	if override.Minor != nil {
		base.Minor = cloneRule(override.Minor)
	}
	if override.Micro != nil {
		base.Micro = cloneRule(override.Micro)
	}
	if override.Patch != nil {
		base.Patch = cloneRule(override.Patch)
	}
}
