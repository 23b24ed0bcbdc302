// Package config handles the vogue policy model: loading and saving policy
// documents, the embedded default policy, validation, and merging a base
// policy with user overrides.
package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/vogue/pkg/constants"
	"github.com/ajxudir/vogue/pkg/verbose"
)

// DefaultOverridePath is the override policy file looked up in the working directory.
const DefaultOverridePath = constants.OverrideFileName

// DefaultMaxConfigFileSize is the largest policy document that will be read (10MB).
const DefaultMaxConfigFileSize int64 = 10 * 1024 * 1024

// Load reads a policy document from path.
//
// A missing or empty file is not an error: it yields a nil configuration, the
// same as having no overrides at all.
//
// Parameters:
//   - path: Path to the YAML policy document
//
// Returns:
//   - *Configuration: The parsed policy, or nil when the file is absent or empty
//   - error: When the file is too large, unreadable, or not valid YAML
func Load(path string) (*Configuration, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		verbose.Infof("No policy file at %s", path)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if info.Size() > DefaultMaxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), DefaultMaxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		verbose.Infof("Policy file %s is empty", path)
		return nil, nil
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	verbose.ConfigLoaded(path, len(cfg.PackageRules))
	return cfg, nil
}

// Parse decodes a YAML policy document.
//
// Parameters:
//   - data: YAML document bytes
//
// Returns:
//   - *Configuration: The parsed policy (never nil on success)
//   - error: When data is not valid YAML for the policy schema
func Parse(data []byte) (*Configuration, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return doc.toConfiguration(), nil
}

// Marshal encodes cfg as a YAML policy document, omitting empty sections.
func Marshal(cfg *Configuration) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fromConfiguration(cfg)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes cfg to path as YAML.
//
// Parameters:
//   - path: Destination file, created or truncated
//   - cfg: The policy to persist
//
// Returns:
//   - error: When encoding or writing fails
func Save(path string, cfg *Configuration) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	verbose.Infof("Policy written to %s", path)
	return nil
}

// SortPackageRules orders package rules by pattern. The sort is stable so
// duplicate patterns keep their relative order.
func SortPackageRules(cfg *Configuration) {
	if cfg == nil {
		return
	}
	sort.SliceStable(cfg.PackageRules, func(i, j int) bool {
		return cfg.PackageRules[i].Package < cfg.PackageRules[j].Package
	})
}

// Store loads and saves the override policy at a fixed path.
//
// Fields:
//   - Path: Location of the override document (default .vogue.yml)
type Store struct {
	Path string
}

// NewStore creates a Store for path, falling back to DefaultOverridePath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultOverridePath
	}
	return &Store{Path: path}
}

// Load reads the override policy; nil when the file is missing or empty.
func (s *Store) Load() (*Configuration, error) {
	return Load(s.Path)
}

// Save persists cfg to the store path.
func (s *Store) Save(cfg *Configuration) error {
	return Save(s.Path, cfg)
}
