package policy

import (
	"time"

	"github.com/ajxudir/vogue/pkg/config"
	"github.com/ajxudir/vogue/pkg/errors"
	"github.com/ajxudir/vogue/pkg/filtering"
	"github.com/ajxudir/vogue/pkg/suppression"
	"github.com/ajxudir/vogue/pkg/verbose"
	"github.com/ajxudir/vogue/pkg/version"
)

// Evaluator applies a policy to dependencies.
//
// Fields:
//   - Now: Clock used for suppression checks
type Evaluator struct {
	Now func() time.Time
}

// NewEvaluator creates an Evaluator using the wall clock.
func NewEvaluator() *Evaluator {
	return &Evaluator{Now: time.Now}
}

// WithClock sets the clock and returns the evaluator for chaining.
func (e *Evaluator) WithClock(now func() time.Time) *Evaluator {
	e.Now = now
	return e
}

func (e *Evaluator) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Evaluate classifies one dependency and applies the policy to it.
//
// It performs the following operations:
//   - Step 1: Parses both versions and classifies the available tier; equal
//     versions return immediately with no rule applied
//   - Step 2: Finds the first package rule whose pattern matches the identifier
//   - Step 3: If that rule has suppressUntil, validates it; an active
//     suppression returns with SuppressedUntil set and no violation evaluated
//   - Step 4: Uses the matched rule's rules, else the default rules, else none
//   - Step 5: Flags the tier as violated when its rule applies and maxDiff < diff
//
// Parameters:
//   - dep: The feed entry
//   - cfg: The merged policy; nil behaves as an empty policy
//
// Returns:
//   - DependencyContext: The evaluation result
//   - error: *errors.MalformedVersionError, *errors.InvalidSuppressionDateError,
//     or a pattern compilation error
func (e *Evaluator) Evaluate(dep Dependency, cfg *config.Configuration) (DependencyContext, error) {
	ctx := DependencyContext{Dependency: dep}
	id := dep.ID()

	current, err := version.Parse(dep.Current)
	if err != nil {
		return ctx, err
	}
	latest, err := version.Parse(dep.Latest)
	if err != nil {
		return ctx, err
	}
	ctx.Current, ctx.Latest = current, latest
	ctx.TierAvailable = version.Classify(current, latest)
	if ctx.IsUpToDate() {
		verbose.Decision(id, "up to date", nil)
		return ctx, nil
	}

	if cfg == nil {
		cfg = &config.Configuration{}
	}

	var matched *config.PackageRule
	patterns := make([]string, len(cfg.PackageRules))
	for i, p := range cfg.PackageRules {
		patterns[i] = p.Package
	}
	idx, err := filtering.FirstMatch(id, patterns)
	if err != nil {
		return ctx, err
	}
	if idx >= 0 {
		matched = &cfg.PackageRules[idx]
		ctx.MatchedPattern = matched.Package
		verbose.RuleMatched(id, matched.Package)
	}

	if matched != nil && matched.HasSuppression() {
		active, err := suppression.Check(matched.SuppressUntil, e.now())
		if err != nil {
			return ctx, err
		}
		if active {
			ctx.SuppressedUntil = matched.SuppressUntil
			verbose.Decision(id, "suppressed", map[string]any{"until": matched.SuppressUntil})
			return ctx, nil
		}
		verbose.Decision(id, "suppression expired", map[string]any{"until": matched.SuppressUntil})
	}

	rules := cfg.DefaultRules
	if matched != nil && matched.Rules != nil {
		rules = matched.Rules
	}

	rule := rules.ForTier(ctx.TierAvailable)
	diff := ctx.Diff()
	if rule.Violated(diff) {
		ctx.Violations = ctx.Violations.With(ctx.TierAvailable)
		verbose.Decision(id, "violation", map[string]any{"tier": ctx.TierAvailable.String(), "diff": diff, "maxDiff": rule.MaxDiff})
	} else {
		verbose.Decision(id, "warning", map[string]any{"tier": ctx.TierAvailable.String(), "diff": diff})
	}
	return ctx, nil
}

// EvaluateBatch evaluates every outdated dependency and assembles a report.
//
// A dependency that fails to evaluate is left out of the report and its
// failure is returned as an *errors.ItemError; the rest of the batch is still
// evaluated. Outdated entries whose versions turn out equal are listed as up
// to date.
//
// Parameters:
//   - outdated: Feed entries with a newer version available
//   - upToDate: Feed entries already at the latest version
//   - cfg: The merged policy
//
// Returns:
//   - *Report: The evaluated report, never nil
//   - []error: Per-dependency failures in feed order
func (e *Evaluator) EvaluateBatch(outdated, upToDate []Dependency, cfg *config.Configuration) (*Report, []error) {
	report := &Report{UpToDate: append([]Dependency(nil), upToDate...)}
	var errs []error

	for _, dep := range outdated {
		ctx, err := e.Evaluate(dep, cfg)
		if err != nil {
			verbose.Printf("Evaluation failed for %s: %v", dep.ID(), err)
			errs = append(errs, errors.NewItemError(dep.ID(), err))
			continue
		}
		if ctx.IsUpToDate() {
			report.UpToDate = append(report.UpToDate, dep)
			continue
		}
		report.Outdated = append(report.Outdated, ctx)
	}

	verbose.Infof("Evaluated %d dependencies: %d violations, %d warnings, %d suppressed, %d failed",
		len(outdated), len(report.Violations()), len(report.Warnings()), len(report.Suppressed()), len(errs))
	return report, errs
}
