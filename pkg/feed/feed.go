// Package feed reads the dependency report produced by the
// gradle-versions-plugin (build/dependencyUpdates/report.json) into the
// outdated and up-to-date dependency lists the evaluator consumes.
package feed

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	modsemver "golang.org/x/mod/semver"

	"github.com/ajxudir/vogue/pkg/errors"
	"github.com/ajxudir/vogue/pkg/policy"
	"github.com/ajxudir/vogue/pkg/verbose"
)

// DefaultReportPath is where the gradle-versions-plugin writes its JSON report.
const DefaultReportPath = "build/dependencyUpdates/report.json"

type reportDependency struct {
	Group     string     `json:"group"`
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	Available *available `json:"available,omitempty"`
}

type available struct {
	Release     string `json:"release"`
	Milestone   string `json:"milestone"`
	Integration string `json:"integration"`
}

type section struct {
	Dependencies []reportDependency `json:"dependencies"`
	Count        int                `json:"count"`
}

type report struct {
	Current  section `json:"current"`
	Outdated section `json:"outdated"`
}

// Feed is the parsed dependency report.
//
// Fields:
//   - Outdated: Dependencies with a newer version available
//   - UpToDate: Dependencies already at the latest version
//   - Skipped: Outdated dependencies left out by pre-release filtering
type Feed struct {
	Outdated []policy.Dependency
	UpToDate []policy.Dependency
	Skipped  []policy.Dependency
}

// Loader reads a dependency report from disk.
//
// Fields:
//   - Path: Location of report.json
//   - ExcludePreReleases: Skip outdated entries whose latest version is a pre-release
type Loader struct {
	Path               string
	ExcludePreReleases bool
}

// NewLoader creates a Loader for path, falling back to DefaultReportPath.
func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultReportPath
	}
	return &Loader{Path: path}
}

// Load reads and parses the report.
//
// Returns:
//   - *Feed: The parsed dependencies
//   - error: *errors.MissingInputReportError when the file does not exist,
//     otherwise a read or decode error
func (l *Loader) Load() (*Feed, error) {
	data, err := os.ReadFile(l.Path)
	if os.IsNotExist(err) {
		return nil, &errors.MissingInputReportError{Path: l.Path, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dependency report: %w", err)
	}

	feed, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Path, err)
	}
	verbose.Infof("Dependency report %s: %d outdated, %d up to date, %d skipped",
		l.Path, len(feed.Outdated), len(feed.UpToDate), len(feed.Skipped))
	return feed, nil
}

// Parse decodes report JSON.
//
// The latest version of an outdated entry is its release version, falling
// back to milestone and then integration when no release is listed.
func (l *Loader) Parse(data []byte) (*Feed, error) {
	var r report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("invalid dependency report: %w", err)
	}

	feed := &Feed{}
	for _, d := range r.Current.Dependencies {
		feed.UpToDate = append(feed.UpToDate, policy.Dependency{
			Group:   d.Group,
			Name:    d.Name,
			Current: d.Version,
		})
	}
	for _, d := range r.Outdated.Dependencies {
		dep := policy.Dependency{
			Group:   d.Group,
			Name:    d.Name,
			Current: d.Version,
			Latest:  latestOf(d.Available),
		}
		if l.ExcludePreReleases && IsPreRelease(dep.Latest) {
			verbose.Printf("Skipping %s: latest version %s is a pre-release", dep.ID(), dep.Latest)
			feed.Skipped = append(feed.Skipped, dep)
			continue
		}
		feed.Outdated = append(feed.Outdated, dep)
	}
	return feed, nil
}

func latestOf(a *available) string {
	if a == nil {
		return ""
	}
	for _, candidate := range []string{a.Release, a.Milestone, a.Integration} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// IsPreRelease reports whether v is a pre-release.
//
// It performs the following operations:
//   - Step 1: Matches a "pre" suffix or an "-rc." marker
//   - Step 2: Checks "v"-prefixed versions with Go module semver rules (v1.2.0-beta.1)
//   - Step 3: Checks the rest as strict semver (1.2.0-beta.1)
//
// Parameters:
//   - v: The version string from the feed
//
// Returns:
//   - bool: true when a pre-release identifier is present
func IsPreRelease(v string) bool {
	lower := strings.ToLower(strings.TrimSpace(v))
	if lower == "" {
		return false
	}
	if strings.HasSuffix(lower, "pre") || strings.Contains(lower, "-rc.") {
		return true
	}
	if strings.HasPrefix(lower, "v") {
		return modsemver.IsValid(lower) && modsemver.Prerelease(lower) != ""
	}
	parsed, err := semver.StrictNewVersion(lower)
	return err == nil && parsed.Prerelease() != ""
}
