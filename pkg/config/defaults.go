package config

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed default.yml
var defaultConfigYAML string

//go:embed template.yml
var templateConfigYAML string

// LoadDefault returns the embedded base policy.
//
// The embedded document is part of the build, so a decode failure is a
// programming error and panics.
//
// Returns:
//   - *Configuration: A fresh copy of the default policy
func LoadDefault() *Configuration {
	cfg, err := Parse([]byte(defaultConfigYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded default policy is invalid: %v", err))
	}
	return cfg
}

// GetDefaultConfig returns the embedded default policy YAML.
func GetDefaultConfig() string {
	return defaultConfigYAML
}

// GetTemplateConfig returns the embedded sample override policy YAML.
func GetTemplateConfig() string {
	return templateConfigYAML
}

// WriteTemplate writes the sample override policy to path unless a file
// already exists there.
//
// Returns:
//   - bool: true if the file was created
//   - error: When the existence check or the write fails
func WriteTemplate(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.WriteFile(path, []byte(templateConfigYAML), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
