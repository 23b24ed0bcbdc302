package suppression

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ajxudir/vogue/pkg/config"
	"github.com/ajxudir/vogue/pkg/display/colors"
	"github.com/ajxudir/vogue/pkg/verbose"
)

// Workflow walks the user through suppressing violations one at a time.
//
// Fields:
//   - In: Source of answers, one per line
//   - Out: Destination for prompts
//   - Now: Clock used for the default date and date validation
//   - Colors: Palette for prompts
type Workflow struct {
	In     io.Reader
	Out    io.Writer
	Now    func() time.Time
	Colors colors.Palette
}

// NewWorkflow creates a Workflow reading answers from in and prompting on out,
// using the wall clock.
func NewWorkflow(in io.Reader, out io.Writer, palette colors.Palette) *Workflow {
	return &Workflow{In: in, Out: out, Now: time.Now, Colors: palette}
}

// Run asks, for each package in order, whether to suppress it and until when.
//
// It performs the following operations:
//   - Step 1: Prompts "Suppress <package>? [Y/n]"; blank or "y" confirms, anything else skips
//   - Step 2: Prompts for the end date until the answer is blank or "y" (today
//     plus DefaultDays), "n" (skip this package), or a date d with
//     today < d <= today + MaxMonthsAhead months (used as entered)
//   - Step 3: Appends {package, suppressUntil} to a copy of override
//
// Answers are trimmed and lower-cased. Appended rules never merge with existing
// entries for the same package.
//
// Parameters:
//   - packages: "<group>:<name>" identifiers of violating dependencies
//   - override: The override policy; not modified, nil is treated as empty
//
// Returns:
//   - *config.Configuration: The override policy with the new suppressions appended
//   - error: io.ErrUnexpectedEOF if input ends before all questions are
//     answered (suppressions chosen so far are kept), or a read error
func (w *Workflow) Run(packages []string, override *config.Configuration) (*config.Configuration, error) {
	updated := override.Clone()
	if updated == nil {
		updated = &config.Configuration{}
	}

	lines := bufio.NewScanner(w.In)
	for _, pkg := range packages {
		w.printf("%s %s? [Y/n]\n", w.Colors.Green("Suppress"), w.Colors.Yellow(pkg))
		answer, err := readAnswer(lines)
		if err != nil {
			return updated, err
		}
		if !confirmed(answer) {
			w.printf("%s\n\n", w.Colors.Cyan("Skipping."))
			continue
		}

		until, ok, err := w.promptDate(lines)
		if err != nil {
			return updated, err
		}
		if !ok {
			w.printf("%s\n", w.Colors.Cyan("Skipping."))
			continue
		}

		updated.PackageRules = append(updated.PackageRules, config.PackageRule{
			Package:       pkg,
			SuppressUntil: until,
		})
		verbose.Decision(pkg, "suppression added", map[string]any{"until": until})
		w.printf("%s %s until %s\n\n", w.Colors.Cyan("Suppressed"), w.Colors.Yellow(pkg), w.Colors.Cyan(until))
	}
	return updated, nil
}

// promptDate loops until the user accepts the default, rejects, or enters
// a valid date. The bool is false when the user rejected.
func (w *Workflow) promptDate(lines *bufio.Scanner) (string, bool, error) {
	now := w.now()
	defaultUntil := DefaultUntil(now)
	for {
		w.printf("\n%s? [%s]\n", w.Colors.Green("Suppress until"), w.Colors.Yellow("Default: "+defaultUntil))
		answer, err := readAnswer(lines)
		if err != nil {
			return "", false, err
		}

		switch {
		case confirmed(answer):
			return defaultUntil, true, nil
		case answer == "n":
			return "", false, nil
		case validChoice(answer, now):
			return answer, true, nil
		}

		w.printf("%s. %s (%s) %s %s\n",
			w.Colors.Red("Invalid date"),
			w.Colors.Yellow("Please input a date"),
			w.Colors.Cyan(fmt.Sprintf("within %d months of today", MaxMonthsAhead)),
			w.Colors.Yellow("with the following format:"),
			w.Colors.Green("yyyy-MM-dd"))
	}
}

func (w *Workflow) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}

func (w *Workflow) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.Out, format, args...)
}

func readAnswer(lines *bufio.Scanner) (string, error) {
	if !lines.Scan() {
		if err := lines.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.ToLower(strings.TrimSpace(lines.Text())), nil
}

func confirmed(answer string) bool {
	return answer == "" || answer == "y"
}
