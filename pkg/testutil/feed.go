package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ajxudir/vogue/pkg/policy"
)

// Dep builds a dependency from a "<group>:<name>" identifier.
func Dep(id, current, latest string) policy.Dependency {
	group, name, _ := strings.Cut(id, ":")
	return policy.Dependency{Group: group, Name: name, Current: current, Latest: latest}
}

// FixedClock returns a clock that always reports noon UTC on the given day.
func FixedClock(year int, month time.Month, day int) func() time.Time {
	at := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

// WriteReport writes a dependency report in the resolver's JSON layout to
// dir/report.json and returns its path.
func WriteReport(t *testing.T, dir string, outdated, current []policy.Dependency) string {
	t.Helper()

	type available struct {
		Release string `json:"release"`
	}
	type entry struct {
		Group     string     `json:"group"`
		Name      string     `json:"name"`
		Version   string     `json:"version"`
		Available *available `json:"available,omitempty"`
	}
	type section struct {
		Dependencies []entry `json:"dependencies"`
		Count        int     `json:"count"`
	}

	doc := struct {
		Current  section `json:"current"`
		Outdated section `json:"outdated"`
	}{
		Current:  section{Dependencies: []entry{}, Count: len(current)},
		Outdated: section{Dependencies: []entry{}, Count: len(outdated)},
	}
	for _, d := range current {
		doc.Current.Dependencies = append(doc.Current.Dependencies, entry{Group: d.Group, Name: d.Name, Version: d.Current})
	}
	for _, d := range outdated {
		doc.Outdated.Dependencies = append(doc.Outdated.Dependencies,
			entry{Group: d.Group, Name: d.Name, Version: d.Current, Available: &available{Release: d.Latest}})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("failed to encode report: %v", err)
	}
	path := filepath.Join(dir, "report.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write report: %v", err)
	}
	return path
}
