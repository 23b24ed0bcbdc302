package output

import (
	"encoding/xml"

	"github.com/ajxudir/vogue/pkg/constants"
	"github.com/ajxudir/vogue/pkg/policy"
)

// ReportResult is the structured form of an evaluated report.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Counts per status
//   - Dependencies: Every evaluated and up-to-date dependency
//   - Errors: Per-dependency evaluation failures (omitted if empty)
type ReportResult struct {
	XMLName      xml.Name          `json:"-" xml:"report"`
	Summary      ReportSummary     `json:"summary" xml:"summary"`
	Dependencies []DependencyEntry `json:"dependencies" xml:"dependencies>dependency"`
	Errors       ErrorMessages     `json:"errors,omitempty" xml:"errors,omitempty"`
}

// TierNames lists violated tiers. XML renders it as
// <violations><tier>MAJOR</tier></violations> and leaves it out when empty.
type TierNames []string

// MarshalXML implements xml.Marshaler.
func (n TierNames) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalList(e, start, "tier", n)
}

// ErrorMessages lists per-dependency failures. XML renders it as
// <errors><error>...</error></errors> and leaves it out when empty.
type ErrorMessages []string

// MarshalXML implements xml.Marshaler.
func (m ErrorMessages) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalList(e, start, "error", m)
}

// marshalList writes values as item elements inside start. Nothing is
// written for an empty list.
func marshalList(e *xml.Encoder, start xml.StartElement, item string, values []string) error {
	if len(values) == 0 {
		return nil
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, v := range values {
		if err := e.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: item}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// ReportSummary holds counts per report status.
type ReportSummary struct {
	UpToDate   int `json:"up_to_date" xml:"upToDate"`
	Warnings   int `json:"warnings" xml:"warnings"`
	Violations int `json:"violations" xml:"violations"`
	Suppressed int `json:"suppressed" xml:"suppressed"`
	Skipped    int `json:"skipped" xml:"skipped"`
	Failed     int `json:"failed" xml:"failed"`
}

// DependencyEntry is one dependency in structured output.
//
// Fields:
//   - Package: "<group>:<name>" identifier
//   - Current: Version in use
//   - Latest: Newest available version (empty when up to date)
//   - Tier: Most significant differing tier (MAJOR, MINOR, MICRO, PATCH), empty when up to date
//   - Diff: Distance at that tier
//   - Status: UpToDate, Warning, Violation, Suppressed or Skipped
//   - Violations: Violated tiers
//   - SuppressedUntil: End date of the active suppression
//   - Rule: Pattern of the package rule that applied
type DependencyEntry struct {
	Package         string    `json:"package" xml:"package"`
	Current         string    `json:"current" xml:"current"`
	Latest          string    `json:"latest,omitempty" xml:"latest,omitempty"`
	Tier            string    `json:"tier,omitempty" xml:"tier,omitempty"`
	Diff            int       `json:"diff,omitempty" xml:"diff,omitempty"`
	Status          string    `json:"status" xml:"status"`
	Violations      TierNames `json:"violations,omitempty" xml:"violations,omitempty"`
	SuppressedUntil string    `json:"suppressed_until,omitempty" xml:"suppressedUntil,omitempty"`
	Rule            string    `json:"rule,omitempty" xml:"rule,omitempty"`
}

// NewReportResult converts an evaluated report into its structured form.
//
// Up-to-date dependencies come first, then outdated ones in report order,
// then skipped ones.
//
// Parameters:
//   - report: The evaluated report (nil yields an empty result)
//   - skipped: Dependencies left out of evaluation
//   - errs: Per-dependency evaluation failures
//
// Returns:
//   - *ReportResult: The structured result
func NewReportResult(report *policy.Report, skipped []policy.Dependency, errs []error) *ReportResult {
	result := &ReportResult{Dependencies: []DependencyEntry{}}
	if report != nil {
		for _, dep := range report.UpToDate {
			result.Dependencies = append(result.Dependencies, DependencyEntry{
				Package: dep.ID(),
				Current: dep.Current,
				Status:  constants.StatusUpToDate,
			})
		}
		for _, c := range report.Outdated {
			result.Dependencies = append(result.Dependencies, NewDependencyEntry(c))
		}
		result.Summary = ReportSummary{
			UpToDate:   len(report.UpToDate),
			Warnings:   len(report.Warnings()),
			Violations: len(report.Violations()),
			Suppressed: len(report.Suppressed()),
		}
	}

	for _, dep := range skipped {
		result.Dependencies = append(result.Dependencies, DependencyEntry{
			Package: dep.ID(),
			Current: dep.Current,
			Latest:  dep.Latest,
			Status:  constants.StatusSkipped,
		})
	}
	result.Summary.Skipped = len(skipped)

	for _, err := range errs {
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
		}
	}
	result.Summary.Failed = len(result.Errors)

	return result
}

// NewDependencyEntry converts one evaluated dependency.
func NewDependencyEntry(c policy.DependencyContext) DependencyEntry {
	entry := DependencyEntry{
		Package:         c.ID(),
		Current:         c.Dependency.Current,
		Latest:          c.Dependency.Latest,
		Status:          c.Status(),
		SuppressedUntil: c.SuppressedUntil,
		Rule:            c.MatchedPattern,
	}
	if !c.IsUpToDate() {
		entry.Tier = c.TierAvailable.String()
		entry.Diff = c.Diff()
	}
	for _, tier := range c.Violations.Tiers() {
		entry.Violations = append(entry.Violations, tier.String())
	}
	return entry
}
