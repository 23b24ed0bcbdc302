package policy

import (
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/vogue/pkg/config"
	"github.com/ajxudir/vogue/pkg/errors"
	"github.com/ajxudir/vogue/pkg/version"
)

var fixedNow = time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)

func newTestEvaluator() *Evaluator {
	return NewEvaluator().WithClock(func() time.Time { return fixedNow })
}

func dep(id, current, latest string) Dependency {
	group, name, _ := strings.Cut(id, ":")
	return Dependency{Group: group, Name: name, Current: current, Latest: latest}
}

// TestEvaluateTierRules tests the behavior of Evaluate with default rules.
//
// It verifies:
//   - maxDiff 0 on major flags a one-major upgrade
//   - maxDiff 2 flags a violation only when diff exceeds 2
//   - maxDiff -1 with requireLatest flags any upgrade at that tier
//   - Non-applying or absent tier rules leave a warning
//   - Equal versions are up to date with no flags
func TestEvaluateTierRules(t *testing.T) {
	cfg := &config.Configuration{DefaultRules: &config.Rules{
		Major: &config.Rule{MaxDiff: 0},
		Minor: &config.Rule{MaxDiff: 2},
		Micro: &config.Rule{MaxDiff: config.NoLimit, RequireLatest: true},
		Patch: &config.Rule{MaxDiff: config.NoLimit},
	}}

	tests := []struct {
		name          string
		current       string
		latest        string
		wantTier      version.Tier
		wantViolation bool
	}{
		{name: "major exceeded", current: "1.0.0.0", latest: "2.0.0.0", wantTier: version.TierMajor, wantViolation: true},
		{name: "minor within", current: "1.2", latest: "1.4", wantTier: version.TierMinor},
		{name: "minor exceeded", current: "1.2", latest: "1.5", wantTier: version.TierMinor, wantViolation: true},
		{name: "micro require latest", current: "1.2.3", latest: "1.2.4", wantTier: version.TierMicro, wantViolation: true},
		{name: "leftmost tier only", current: "1.2.3.4", latest: "1.2.9.0", wantTier: version.TierMicro, wantViolation: true},
		{name: "patch not applying", current: "1.2.3.4", latest: "1.2.3.9", wantTier: version.TierPatch},
		{name: "equal", current: "1.2.3", latest: "1.2.3.0", wantTier: version.TierNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := newTestEvaluator().Evaluate(dep("com.acme:foo", tt.current, tt.latest), cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTier, ctx.TierAvailable)
			assert.Equal(t, tt.wantViolation, ctx.IsViolation())
			if tt.wantViolation {
				assert.Equal(t, []version.Tier{tt.wantTier}, ctx.Violations.Tiers())
			}
			assert.False(t, ctx.IsSuppressed())
		})
	}
}

// TestEvaluatePackageRules tests package rule selection.
//
// It verifies:
//   - The first matching pattern in list order wins
//   - Matching is unanchored against "<group>:<name>"
//   - A matched rule without rules falls back to the defaults
//   - No policy at all yields warnings only
func TestEvaluatePackageRules(t *testing.T) {
	cfg := &config.Configuration{
		DefaultRules: &config.Rules{Major: &config.Rule{MaxDiff: 0}},
		PackageRules: []config.PackageRule{
			{Package: "acme:legacy", Rules: &config.Rules{Major: &config.Rule{MaxDiff: 5}}},
			{Package: `^com\.acme:`, Rules: &config.Rules{Major: &config.Rule{MaxDiff: 1}}},
			{Package: "acme", Rules: &config.Rules{Major: &config.Rule{MaxDiff: 10}}},
			{Package: "org.note:", Note: "PROJ-1"},
		},
	}
	ev := newTestEvaluator()

	ctx, err := ev.Evaluate(dep("com.acme:legacy", "1", "4"), cfg)
	require.NoError(t, err)
	assert.False(t, ctx.IsViolation(), "first rule allows 5")
	assert.Equal(t, "acme:legacy", ctx.MatchedPattern)

	ctx, err = ev.Evaluate(dep("com.acme:core", "1", "3"), cfg)
	require.NoError(t, err)
	assert.True(t, ctx.IsViolation(), "second rule allows 1, later broader rule is ignored")
	assert.Equal(t, `^com\.acme:`, ctx.MatchedPattern)

	ctx, err = ev.Evaluate(dep("org.note:lib", "1", "2"), cfg)
	require.NoError(t, err)
	assert.True(t, ctx.IsViolation(), "rule without rules uses defaults")

	ctx, err = ev.Evaluate(dep("org.other:lib", "1", "9"), cfg)
	require.NoError(t, err)
	assert.True(t, ctx.IsViolation())
	assert.Empty(t, ctx.MatchedPattern)

	ctx, err = ev.Evaluate(dep("org.other:lib", "1", "9"), nil)
	require.NoError(t, err)
	assert.True(t, ctx.IsWarning())
}

// TestEvaluateSuppression tests the suppression check.
//
// It verifies:
//   - A future suppressUntil suppresses regardless of rules
//   - Today or a past date falls through to tier evaluation
//   - Dates beyond three months and unparsable dates are errors
//   - Only the first matching rule's suppression counts
func TestEvaluateSuppression(t *testing.T) {
	defaults := &config.Rules{Minor: &config.Rule{MaxDiff: 0}}
	withSuppression := func(until string) *config.Configuration {
		return &config.Configuration{
			DefaultRules: defaults,
			PackageRules: []config.PackageRule{{Package: `^com\.acme:`, SuppressUntil: until}},
		}
	}
	ev := newTestEvaluator()
	foo := dep("com.acme:foo", "1.2.0.0", "1.3.0.0")

	t.Run("tomorrow suppresses", func(t *testing.T) {
		ctx, err := ev.Evaluate(foo, withSuppression("2024-06-11"))
		require.NoError(t, err)
		assert.True(t, ctx.IsSuppressed())
		assert.Equal(t, "2024-06-11", ctx.SuppressedUntil)
		assert.True(t, ctx.Violations.IsEmpty())
		assert.Equal(t, version.TierMinor, ctx.TierAvailable)
		assert.False(t, ctx.IsWarning())
	})

	t.Run("slashed date", func(t *testing.T) {
		ctx, err := ev.Evaluate(foo, withSuppression("2024/09/10"))
		require.NoError(t, err)
		assert.True(t, ctx.IsSuppressed())
	})

	for _, until := range []string{"2024-06-10", "2024-06-09", "2020-01-01"} {
		t.Run("expired "+until, func(t *testing.T) {
			ctx, err := ev.Evaluate(foo, withSuppression(until))
			require.NoError(t, err)
			assert.False(t, ctx.IsSuppressed())
			assert.True(t, ctx.IsViolation())
		})
	}

	t.Run("too far", func(t *testing.T) {
		_, err := ev.Evaluate(foo, withSuppression("2024-09-11"))
		invalid, ok := errors.IsInvalidSuppressionDate(err)
		require.True(t, ok)
		assert.Equal(t, errors.SuppressionDateTooFar, invalid.Reason)
	})

	t.Run("unparsable", func(t *testing.T) {
		_, err := ev.Evaluate(foo, withSuppression("tomorrow"))
		invalid, ok := errors.IsInvalidSuppressionDate(err)
		require.True(t, ok)
		assert.Equal(t, errors.SuppressionDateUnparsable, invalid.Reason)
	})

	t.Run("shadowed suppression ignored", func(t *testing.T) {
		cfg := &config.Configuration{
			DefaultRules: defaults,
			PackageRules: []config.PackageRule{
				{Package: "com.acme:foo"},
				{Package: "acme", SuppressUntil: "2024-06-20"},
			},
		}
		ctx, err := ev.Evaluate(foo, cfg)
		require.NoError(t, err)
		assert.False(t, ctx.IsSuppressed())
		assert.True(t, ctx.IsViolation())
	})

	t.Run("up to date skips suppression check", func(t *testing.T) {
		ctx, err := ev.Evaluate(dep("com.acme:foo", "1.0", "1.0"), withSuppression("garbage"))
		require.NoError(t, err)
		assert.True(t, ctx.IsUpToDate())
	})
}

// TestEvaluateErrors tests per-dependency failures.
//
// It verifies:
//   - Malformed current or latest versions are MalformedVersionError
//   - An invalid pattern reached during matching is an error
func TestEvaluateErrors(t *testing.T) {
	ev := newTestEvaluator()

	_, err := ev.Evaluate(dep("a:b", "latest", "1.0"), nil)
	assert.True(t, errors.IsMalformedVersion(err))

	_, err = ev.Evaluate(dep("a:b", "1.0", ""), nil)
	assert.True(t, errors.IsMalformedVersion(err))

	_, err = ev.Evaluate(dep("a:b", "1.0", "2.0"), &config.Configuration{
		PackageRules: []config.PackageRule{{Package: "(broken"}},
	})
	assert.Error(t, err)
}

// TestEvaluateBatch tests the behavior of EvaluateBatch.
//
// It verifies:
//   - Failures are collected as ItemErrors without aborting the batch
//   - Failed dependencies are left out of the report
//   - Outdated entries with equal versions move to UpToDate
//   - Warnings, violations and suppressed entries are reported separately
func TestEvaluateBatch(t *testing.T) {
	cfg := &config.Configuration{
		DefaultRules: &config.Rules{Major: &config.Rule{MaxDiff: 0}},
		PackageRules: []config.PackageRule{
			{Package: "bad:date", SuppressUntil: "2030-01-01"},
			{Package: "quiet:lib", SuppressUntil: "2024-07-01"},
		},
	}
	outdated := []Dependency{
		dep("a:major", "1.0", "2.0"),
		dep("b:minor", "1.0", "1.1"),
		dep("bad:version", "one", "2.0"),
		dep("bad:date", "1.0", "2.0"),
		dep("same:lib", "1.0", "1.0.0"),
		dep("quiet:lib", "1.0", "3.0"),
	}
	upToDate := []Dependency{{Group: "c", Name: "current", Current: "4.2"}}

	report, errs := newTestEvaluator().EvaluateBatch(outdated, upToDate, cfg)

	require.Len(t, errs, 2)
	var ids []string
	for _, err := range errs {
		var item *errors.ItemError
		require.ErrorAs(t, err, &item)
		ids = append(ids, item.Package)
	}
	assert.Equal(t, []string{"bad:version", "bad:date"}, ids)
	assert.True(t, errors.IsMalformedVersion(errs[0]))
	_, ok := errors.IsInvalidSuppressionDate(errs[1])
	assert.True(t, ok)

	assert.Equal(t, []string{"c:current", "same:lib"}, idsOf(report.UpToDate))
	assert.Equal(t, []string{"a:major"}, report.ViolationIDs())
	assert.Equal(t, []string{"b:minor"}, contextIDs(report.Warnings()))
	assert.Equal(t, []string{"quiet:lib"}, contextIDs(report.Suppressed()))
	assert.Len(t, report.Outdated, 3)
	assert.True(t, report.HasViolations())
	assert.Equal(t, "2 up to date, 1 warnings, 1 violations, 1 suppressed", report.Summary())
}

func idsOf(deps []Dependency) []string {
	var ids []string
	for _, d := range deps {
		ids = append(ids, d.ID())
	}
	return ids
}

func contextIDs(contexts []DependencyContext) []string {
	var ids []string
	for _, c := range contexts {
		ids = append(ids, c.ID())
	}
	return ids
}

// TestEvaluateProperties checks evaluator invariants over generated inputs.
//
// It verifies:
//   - Equal versions never carry a violation
//   - A suppressed result never carries a violation
//   - maxDiff -1 with requireLatest violates iff diff >= 1
//   - maxDiff k violates iff diff > k
func TestEvaluateProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	ev := newTestEvaluator()

	properties.Property("equal versions never violate", prop.ForAll(
		func(major, minor int, maxDiff int) bool {
			v := version.Version{Major: major, Minor: minor}.String()
			cfg := &config.Configuration{DefaultRules: &config.Rules{
				Major: &config.Rule{MaxDiff: maxDiff, RequireLatest: true},
				Minor: &config.Rule{MaxDiff: maxDiff, RequireLatest: true},
			}}
			ctx, err := ev.Evaluate(dep("a:b", v, v), cfg)
			return err == nil && ctx.TierAvailable == version.TierNone && ctx.Violations.IsEmpty()
		},
		gen.IntRange(0, 50), gen.IntRange(0, 50), gen.IntRange(config.NoLimit, 5),
	))

	properties.Property("suppressed never violates", prop.ForAll(
		func(daysAhead, diff int) bool {
			until := fixedNow.AddDate(0, 0, daysAhead).Format("2006-01-02")
			cfg := &config.Configuration{
				DefaultRules: &config.Rules{Major: &config.Rule{MaxDiff: 0}},
				PackageRules: []config.PackageRule{{Package: "a:b", SuppressUntil: until}},
			}
			ctx, err := ev.Evaluate(dep("a:b", "1", version.Version{Major: 1 + diff}.String()), cfg)
			return err == nil && ctx.IsSuppressed() && ctx.Violations.IsEmpty()
		},
		gen.IntRange(1, 80), gen.IntRange(1, 20),
	))

	properties.Property("require latest violates any upgrade", prop.ForAll(
		func(diff int) bool {
			cfg := &config.Configuration{DefaultRules: &config.Rules{
				Minor: &config.Rule{MaxDiff: config.NoLimit, RequireLatest: true},
			}}
			ctx, err := ev.Evaluate(dep("a:b", "1.0", version.Version{Major: 1, Minor: diff}.String()), cfg)
			return err == nil && ctx.IsViolation()
		},
		gen.IntRange(1, 100),
	))

	properties.Property("maxDiff caps the distance", prop.ForAll(
		func(maxDiff, diff int, requireLatest bool) bool {
			cfg := &config.Configuration{DefaultRules: &config.Rules{
				Patch: &config.Rule{MaxDiff: maxDiff, RequireLatest: requireLatest},
			}}
			ctx, err := ev.Evaluate(dep("a:b", "1.0.0.0", version.Version{Major: 1, Patch: diff}.String()), cfg)
			return err == nil && ctx.IsViolation() == (diff > maxDiff)
		},
		gen.IntRange(0, 10), gen.IntRange(1, 20), gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
