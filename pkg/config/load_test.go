package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests the behavior of Load.
//
// It verifies:
//   - A missing file yields a nil policy without error
//   - An empty or whitespace-only file yields a nil policy without error
//   - Invalid YAML is reported with the file path
//   - A valid document is parsed
func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(tmpDir, "absent.yml"))
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "empty.yml")
		require.NoError(t, os.WriteFile(path, []byte("  \n\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(tmpDir, "broken.yml")
		require.NoError(t, os.WriteFile(path, []byte("defaultRules: ["), 0o644))

		cfg, err := Load(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("valid document", func(t *testing.T) {
		path := filepath.Join(tmpDir, "valid.yml")
		content := `packageRules:
  - package: "com.acme:core"
    suppressUntil: "2024/01/31"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		require.Len(t, cfg.PackageRules, 1)
		assert.Equal(t, "com.acme:core", cfg.PackageRules[0].Package)
		assert.Equal(t, "2024/01/31", cfg.PackageRules[0].SuppressUntil)
		assert.Nil(t, cfg.DefaultRules)
	})
}

// TestLoadFileSizeLimit tests that oversized policy documents are rejected.
//
// It verifies:
//   - Files above DefaultMaxConfigFileSize return an error mentioning the size
func TestLoadFileSizeLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.yml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(DefaultMaxConfigFileSize+1))
	require.NoError(t, f.Close())

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "too large")
}

// TestParseLegacyTierKeys tests the translation of document tier keys.
//
// It verifies:
//   - Document key "patch" configures the third component (Micro)
//   - Document key "micro" configures the fourth component (Patch)
//   - A rule without maxDiff defaults to NoLimit
func TestParseLegacyTierKeys(t *testing.T) {
	content := `defaultRules:
  major:
    maxDiff: 0
  patch:
    maxDiff: 3
  micro:
    requireLatest: true
`
	cfg, err := Parse([]byte(content))
	require.NoError(t, err)
	require.NotNil(t, cfg.DefaultRules)

	assert.Equal(t, &Rule{MaxDiff: 0}, cfg.DefaultRules.Major)
	assert.Nil(t, cfg.DefaultRules.Minor)
	assert.Equal(t, &Rule{MaxDiff: 3}, cfg.DefaultRules.Micro)
	assert.Equal(t, &Rule{MaxDiff: NoLimit, RequireLatest: true}, cfg.DefaultRules.Patch)
}

// TestParseProjectIssue tests that the legacy projectIssue key is read as the note.
//
// It verifies:
//   - projectIssue fills Note when note is absent
//   - note wins when both keys are present
func TestParseProjectIssue(t *testing.T) {
	content := `packageRules:
  - package: a
    projectIssue: PROJ-1
  - package: b
    projectIssue: PROJ-2
    note: PROJ-3
`
	cfg, err := Parse([]byte(content))
	require.NoError(t, err)
	require.Len(t, cfg.PackageRules, 2)
	assert.Equal(t, "PROJ-1", cfg.PackageRules[0].Note)
	assert.Equal(t, "PROJ-3", cfg.PackageRules[1].Note)
}

// TestMarshalRoundTrip tests that saving and reloading preserves a policy.
//
// It verifies:
//   - Internal Micro is written under the "patch" key and Patch under "micro"
//   - NoLimit maxDiff values are omitted from the document
//   - Empty rule sections are dropped
//   - Reloading yields an equal configuration
func TestMarshalRoundTrip(t *testing.T) {
	cfg := &Configuration{
		DefaultRules: &Rules{
			Micro: &Rule{MaxDiff: 2},
			Patch: &Rule{MaxDiff: NoLimit, RequireLatest: true},
		},
		PackageRules: []PackageRule{
			{Package: "org.slf4j:slf4j-api", SuppressUntil: "2024-01-31", Note: "PROJ-9"},
			{Package: "^com\\.acme:", Rules: &Rules{Major: &Rule{MaxDiff: 2}}},
		},
	}

	data, err := Marshal(cfg)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "patch:\n    maxDiff: 2")
	assert.Contains(t, text, "micro:\n    requireLatest: true")
	assert.NotContains(t, text, "maxDiff: -1")
	assert.Equal(t, 1, strings.Count(text, "rules:"), "the suppression-only rule has no rules section")

	reloaded, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

// TestSaveAndStore tests Save and the Store wrapper.
//
// It verifies:
//   - NewStore falls back to DefaultOverridePath
//   - Store.Save writes a document Store.Load reads back
func TestSaveAndStore(t *testing.T) {
	assert.Equal(t, DefaultOverridePath, NewStore("").Path)

	store := NewStore(filepath.Join(t.TempDir(), ".vogue.yml"))
	cfg := &Configuration{PackageRules: []PackageRule{{Package: "a:b", SuppressUntil: "2030-01-01"}}}

	require.NoError(t, store.Save(cfg))
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

// TestSortPackageRules tests ordering of package rules by pattern.
//
// It verifies:
//   - Rules are sorted by pattern
//   - Rules with equal patterns keep their relative order
//   - A nil configuration is ignored
func TestSortPackageRules(t *testing.T) {
	cfg := &Configuration{PackageRules: []PackageRule{
		{Package: "c"},
		{Package: "a", Note: "first"},
		{Package: "b"},
		{Package: "a", Note: "second"},
	}}

	SortPackageRules(cfg)

	var order []string
	for _, p := range cfg.PackageRules {
		order = append(order, p.Package+p.Note)
	}
	assert.Equal(t, []string{"afirst", "asecond", "b", "c"}, order)

	assert.NotPanics(t, func() { SortPackageRules(nil) })
}

// TestLoadDefault tests the embedded base policy.
//
// It verifies:
//   - Major tolerates one version behind, minor five
//   - The third component has an explicit non-applying rule
//   - Each call returns an independent copy
func TestLoadDefault(t *testing.T) {
	cfg := LoadDefault()
	require.NotNil(t, cfg.DefaultRules)

	assert.Equal(t, 1, cfg.DefaultRules.Major.MaxDiff)
	assert.Equal(t, 5, cfg.DefaultRules.Minor.MaxDiff)
	require.NotNil(t, cfg.DefaultRules.Micro)
	assert.False(t, cfg.DefaultRules.Micro.Applies())
	assert.Nil(t, cfg.DefaultRules.Patch)
	assert.Empty(t, cfg.PackageRules)

	cfg.DefaultRules.Major.MaxDiff = 42
	assert.Equal(t, 1, LoadDefault().DefaultRules.Major.MaxDiff)
}

// TestWriteTemplate tests writing the sample override policy.
//
// It verifies:
//   - The template is written when no file exists and is itself valid
//   - An existing file is left untouched
func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".vogue.yml")

	created, err := WriteTemplate(path)
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, GetTemplateConfig(), string(data))
	assert.False(t, ValidateConfigFile(data).HasErrors())

	require.NoError(t, os.WriteFile(path, []byte("packageRules: []\n"), 0o644))
	created, err = WriteTemplate(path)
	require.NoError(t, err)
	assert.False(t, created)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "packageRules: []\n", string(data))
}
