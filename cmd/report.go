package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajxudir/vogue/pkg/config"
	"github.com/ajxudir/vogue/pkg/display"
	"github.com/ajxudir/vogue/pkg/display/colors"
	"github.com/ajxudir/vogue/pkg/errors"
	"github.com/ajxudir/vogue/pkg/feed"
	"github.com/ajxudir/vogue/pkg/output"
	"github.com/ajxudir/vogue/pkg/policy"
	"github.com/ajxudir/vogue/pkg/suppression"
	"github.com/ajxudir/vogue/pkg/warnings"
)

var (
	reportPathFlag         string
	excludePreReleasesFlag bool
	outputFlag             string
	showRuleFlag           bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report dependency upgrades against the upgrade policy",
	Long: `Read the dependency report written by the resolver, evaluate every
outdated dependency against the default policy merged with .vogue.yml, and
print up-to-date dependencies, suppressions, warnings and violations.

Exit codes: 0 no violations, 1 some dependencies could not be evaluated,
2 rule violations, 3 stale suppressions, invalid policy or missing report.`,
	RunE: runReport,
}

func init() {
	addFeedFlags(reportCmd)
	reportCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format: text (default), table, json, csv, xml")
	reportCmd.Flags().BoolVar(&showRuleFlag, "show-rule", false, "Show the matching package rule in table output")
}

// addFeedFlags registers the flags shared by commands that read the dependency report.
func addFeedFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&reportPathFlag, "report", "r", "", "Dependency report (default "+feed.DefaultReportPath+", env "+EnvReport+")")
	cmd.Flags().BoolVar(&excludePreReleasesFlag, "exclude-prereleases", false, "Skip outdated dependencies whose latest version is a pre-release")
}

// settingsFor resolves the flags of cmd into Settings.
func settingsFor(cmd *cobra.Command) Settings {
	return Settings{
		ConfigPath:         configPath(),
		ReportPath:         envOr(reportPathFlag, EnvReport),
		ExcludePreReleases: excludePreReleasesFlag,
		NoColor:            noColorFlag,
		In:                 cmd.InOrStdin(),
		Out:                cmd.OutOrStdout(),
		Now:                nowFunc,
	}
}

// evaluation is the outcome of evaluating the dependency report.
type evaluation struct {
	report *policy.Report
	feed   *feed.Feed
	errs   []error
}

// evaluate loads the dependency report and evaluates it against cfg.
func (a *App) evaluate(cfg *config.Configuration) (*evaluation, error) {
	loaded, err := a.Loader.Load()
	if err != nil {
		return nil, err
	}
	report, errs := a.Evaluator.EvaluateBatch(loaded.Outdated, loaded.UpToDate, cfg)
	return &evaluation{report: report, feed: loaded, errs: errs}, nil
}

// runReport executes the report command.
//
// It performs the following operations:
//   - Step 1: Loads and validates the policies and merges them
//   - Step 2: Fails with the stale suppressions, if any, before evaluating
//   - Step 3: Loads the dependency report and evaluates it
//   - Step 4: Writes the report in the selected format
//   - Step 5: Returns an exit error for violations or per-dependency failures
//
// Warnings raised during the run are held back and printed to stderr after
// the report.
func runReport(cmd *cobra.Command, args []string) error {
	format, ok := output.ParseFormat(outputFlag)
	if !ok {
		return errors.NewExitErrorf(errors.ExitConfigError, "unsupported output format %q (use text, table, json, csv or xml)", outputFlag)
	}

	collector := display.NewWarningCollector()
	restoreWarnings := warnings.SetWarningWriter(collector)
	defer func() {
		restoreWarnings()
		display.PrintWarnings(cmd.ErrOrStderr(), collector.Messages())
	}()

	app, err := injectApp(settingsFor(cmd))
	if err != nil {
		return err
	}

	base, override, err := loadPolicies(app.Store)
	if err != nil {
		return err
	}
	merged := config.Merge(base, override)

	if err := suppression.StaleError(merged, app.Now()); err != nil {
		if stale, ok := errors.IsStaleSuppressions(err); ok {
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), display.StaleSuppressionsMessage(stale.Stale, app.Palette))
		}
		return err
	}

	result, err := app.evaluate(merged)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case output.IsStructuredFormat(format):
		structured := output.NewReportResult(result.report, result.feed.Skipped, result.errs)
		if err := output.WriteReportResult(out, format, structured); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	case format == output.FormatTable:
		display.WriteReportTable(out, result.report, showRuleFlag)
		display.PrintSkipped(cmd.ErrOrStderr(), result.feed.Skipped, "pre-release")
	default:
		_, _ = fmt.Fprint(out, display.RenderReport(result.report, app.Palette))
		display.PrintSkipped(cmd.ErrOrStderr(), result.feed.Skipped, "pre-release")
		display.PrintSummary(out, result.report)
	}

	return reportOutcome(result, app.Palette)
}

// reportOutcome maps an evaluation to the command's exit error: violations
// first, then per-dependency failures.
func reportOutcome(result *evaluation, p colors.Palette) error {
	if violations := len(result.report.Violations()); violations > 0 {
		return errors.NewExitError(errors.ExitFailure, fmt.Errorf("%s", display.ViolationsMessage(violations, p)))
	}
	if len(result.errs) > 0 {
		evaluated := len(result.report.Outdated) + len(result.report.UpToDate)
		return errors.NewPartialSuccessError(evaluated, len(result.errs), result.errs)
	}
	return nil
}
