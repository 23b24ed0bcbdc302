package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/vogue/pkg/errors"
	"github.com/ajxudir/vogue/pkg/policy"
)

const sampleReport = `{
  "current": {
    "dependencies": [
      {"group": "org.slf4j", "name": "slf4j-api", "version": "2.0.9", "projectUrl": "https://www.slf4j.org"}
    ],
    "count": 1
  },
  "outdated": {
    "dependencies": [
      {"group": "com.google.guava", "name": "guava", "version": "30.0-jre",
       "available": {"release": "31.1-jre", "milestone": null, "integration": null}},
      {"group": "com.acme", "name": "core", "version": "1.2.0",
       "available": {"release": null, "milestone": "2.0.0-rc.1", "integration": null}},
      {"group": "io.example", "name": "nightly", "version": "1.0",
       "available": {"release": "1.1pre", "milestone": null, "integration": null}}
    ],
    "count": 3
  },
  "exceeded": {"dependencies": [], "count": 0},
  "unresolved": {"dependencies": [], "count": 0}
}`

func writeReport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoaderLoad tests the behavior of Loader.Load.
//
// It verifies:
//   - Current dependencies become up-to-date entries
//   - Outdated dependencies use the release version, else milestone
//   - Unknown report sections and fields are ignored
func TestLoaderLoad(t *testing.T) {
	feed, err := NewLoader(writeReport(t, sampleReport)).Load()
	require.NoError(t, err)

	assert.Equal(t, []policy.Dependency{
		{Group: "org.slf4j", Name: "slf4j-api", Current: "2.0.9"},
	}, feed.UpToDate)
	assert.Equal(t, []policy.Dependency{
		{Group: "com.google.guava", Name: "guava", Current: "30.0-jre", Latest: "31.1-jre"},
		{Group: "com.acme", Name: "core", Current: "1.2.0", Latest: "2.0.0-rc.1"},
		{Group: "io.example", Name: "nightly", Current: "1.0", Latest: "1.1pre"},
	}, feed.Outdated)
	assert.Empty(t, feed.Skipped)
}

// TestLoaderExcludePreReleases tests pre-release filtering.
//
// It verifies:
//   - Outdated entries with a pre-release latest version are skipped
//   - Skipped entries are reported separately
func TestLoaderExcludePreReleases(t *testing.T) {
	loader := NewLoader(writeReport(t, sampleReport))
	loader.ExcludePreReleases = true

	feed, err := loader.Load()
	require.NoError(t, err)

	require.Len(t, feed.Outdated, 1)
	assert.Equal(t, "com.google.guava:guava", feed.Outdated[0].ID())
	assert.Len(t, feed.Skipped, 2)
}

// TestLoaderErrors tests failure modes of Loader.Load.
//
// It verifies:
//   - A missing report is a MissingInputReportError with exit code 3
//   - Invalid JSON is a decode error naming the file
func TestLoaderErrors(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "absent.json")).Load()
	require.Error(t, err)
	assert.True(t, errors.IsMissingInputReport(err))
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))

	path := writeReport(t, "{not json")
	_, err = NewLoader(path).Load()
	require.Error(t, err)
	assert.False(t, errors.IsMissingInputReport(err))
	assert.Contains(t, err.Error(), path)
}

// TestNewLoaderDefault tests the default report path.
func TestNewLoaderDefault(t *testing.T) {
	assert.Equal(t, DefaultReportPath, NewLoader("").Path)
	assert.Equal(t, "custom.json", NewLoader("custom.json").Path)
}

// TestIsPreRelease tests pre-release detection.
func TestIsPreRelease(t *testing.T) {
	tests := map[string]bool{
		"1.2.0-beta.1":  true,
		"2.0.0-rc.1":    true,
		"3.0-RC.2":      true,
		"1.1pre":        true,
		"4.0.0-PRE":     true,
		"1.2.3":         false,
		"31.1-jre":      false,
		"5.3.20":        false,
		"":              false,
		"1.2.3+build":   false,
		"v1.2.0-beta.1": true,
		"V3.0.0-alpha":  true,
		"v2.1.0":        false,
		"v2.1.0+meta":   false,
		"v31.1-jre":     false,
	}
	for v, want := range tests {
		t.Run(v, func(t *testing.T) {
			assert.Equal(t, want, IsPreRelease(v))
		})
	}
}
