package testutil

import (
	"github.com/ajxudir/vogue/pkg/config"
	"github.com/ajxudir/vogue/pkg/version"
)

// ConfigBuilder builds policies for tests.
//
// Example:
//
//	cfg := testutil.NewConfig().
//	    WithDefault(version.TierMajor, 0).
//	    WithSuppression("com.acme:core", "2024-07-01").
//	    Build()
type ConfigBuilder struct {
	cfg *config.Configuration
}

// NewConfig creates a builder for an empty policy.
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: &config.Configuration{}}
}

// WithDefault sets the default rule for tier to maxDiff.
func (b *ConfigBuilder) WithDefault(tier version.Tier, maxDiff int) *ConfigBuilder {
	if b.cfg.DefaultRules == nil {
		b.cfg.DefaultRules = &config.Rules{}
	}
	setRule(b.cfg.DefaultRules, tier, &config.Rule{MaxDiff: maxDiff})
	return b
}

// WithRequireLatest sets the default rule for tier to require the latest version.
func (b *ConfigBuilder) WithRequireLatest(tier version.Tier) *ConfigBuilder {
	if b.cfg.DefaultRules == nil {
		b.cfg.DefaultRules = &config.Rules{}
	}
	setRule(b.cfg.DefaultRules, tier, &config.Rule{MaxDiff: config.NoLimit, RequireLatest: true})
	return b
}

// WithPackageRule appends a package rule limiting tier to maxDiff.
func (b *ConfigBuilder) WithPackageRule(pattern string, tier version.Tier, maxDiff int) *ConfigBuilder {
	rules := &config.Rules{}
	setRule(rules, tier, &config.Rule{MaxDiff: maxDiff})
	b.cfg.PackageRules = append(b.cfg.PackageRules, config.PackageRule{Package: pattern, Rules: rules})
	return b
}

// WithSuppression appends a package rule suppressing pattern until date.
func (b *ConfigBuilder) WithSuppression(pattern, until string) *ConfigBuilder {
	b.cfg.PackageRules = append(b.cfg.PackageRules, config.PackageRule{Package: pattern, SuppressUntil: until})
	return b
}

// Build returns the policy.
func (b *ConfigBuilder) Build() *config.Configuration {
	return b.cfg
}

func setRule(rules *config.Rules, tier version.Tier, rule *config.Rule) {
	switch tier {
	case version.TierMajor:
		rules.Major = rule
	case version.TierMinor:
		rules.Minor = rule
	case version.TierMicro:
		rules.Micro = rule
	case version.TierPatch:
		rules.Patch = rule
	}
}

// StrictPolicy returns the policy used by most command tests: major and
// minor upgrades are violations, micro and patch upgrades are warnings.
func StrictPolicy() *config.Configuration {
	return NewConfig().
		WithDefault(version.TierMajor, 0).
		WithDefault(version.TierMinor, 0).
		Build()
}
