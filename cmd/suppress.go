package cmd

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ajxudir/vogue/pkg/config"
	"github.com/ajxudir/vogue/pkg/display"
	"github.com/ajxudir/vogue/pkg/errors"
	"github.com/ajxudir/vogue/pkg/suppression"
	"github.com/ajxudir/vogue/pkg/verbose"
	"github.com/ajxudir/vogue/pkg/warnings"
)

var suppressCmd = &cobra.Command{
	Use:   "suppress",
	Short: "Interactively suppress rule violations",
	Long: `Evaluate the dependency report, then ask for each rule violation whether
to suppress it and until when. Suppressions are appended to .vogue.yml;
stale suppressions are removed from it first.`,
	RunE: runSuppress,
}

func init() {
	addFeedFlags(suppressCmd)
}

// runSuppress executes the suppress command.
//
// It performs the following operations:
//   - Step 1: Loads the policies and prunes stale suppressions from both
//   - Step 2: Evaluates the dependency report against the merged policy
//   - Step 3: Runs the suppression workflow over the violations
//   - Step 4: Sorts the override package rules and saves the override policy
//     when anything changed
//
// The base policy is never written. When input ends early the suppressions
// gathered so far are still saved.
func runSuppress(cmd *cobra.Command, args []string) error {
	app, err := injectApp(settingsFor(cmd))
	if err != nil {
		return err
	}

	base, override, err := loadPolicies(app.Store)
	if err != nil {
		return err
	}

	now := app.Now()
	override, removed := suppression.Prune(override, now)
	for _, r := range removed {
		warnings.Warnf("removed stale suppression for %s (expired %s)", r.Package, r.SuppressUntil)
	}
	base, _ = suppression.Prune(base, now)

	result, err := app.evaluate(config.Merge(base, override))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprint(out, display.RenderReport(result.report, app.Palette))

	if !result.report.HasViolations() {
		_, _ = fmt.Fprintln(out, "No rule violations to suppress.")
		if len(removed) > 0 {
			return saveOverride(app.Store, override, out, 0)
		}
		return nil
	}

	violations := result.report.ViolationIDs()
	updated, runErr := app.Workflow.Run(violations, override)
	added := len(updated.PackageRules) - len(ruleList(override))
	if runErr != nil && !stderrors.Is(runErr, io.ErrUnexpectedEOF) {
		return runErr
	}

	if added > 0 || len(removed) > 0 {
		if err := saveOverride(app.Store, updated, out, added); err != nil {
			return err
		}
	}

	if runErr != nil {
		verbose.Infof("Input ended after %d of %d violations", added, len(violations))
		return errors.NewExitError(errors.ExitPartialFailure, fmt.Errorf("input ended before every violation was answered: %w", runErr))
	}
	return nil
}

func ruleList(cfg *config.Configuration) []config.PackageRule {
	if cfg == nil {
		return nil
	}
	return cfg.PackageRules
}

// saveOverride sorts the override package rules by pattern and persists them.
func saveOverride(store *config.Store, cfg *config.Configuration, out io.Writer, added int) error {
	if cfg == nil {
		cfg = &config.Configuration{}
	}
	config.SortPackageRules(cfg)
	if err := store.Save(cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Saved %d new suppression(s) to %s\n", added, store.Path)
	return nil
}
