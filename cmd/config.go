package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/vogue/pkg/config"
	"github.com/ajxudir/vogue/pkg/constants"
	"github.com/ajxudir/vogue/pkg/errors"
	"github.com/ajxudir/vogue/pkg/verbose"
	"github.com/ajxudir/vogue/pkg/warnings"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
)

var readFileFunc = os.ReadFile

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, create or validate the policy file",
	Long: `Show the default or effective upgrade policy, create a .vogue.yml
template, or validate an existing policy file.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show the built-in default policy")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show the default policy merged with .vogue.yml")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create a .vogue.yml template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate the policy file (rejects unknown fields)")
}

// configPath returns the override policy path from --config, VOGUE_CONFIG or
// the default .vogue.yml.
func configPath() string {
	if path := envOr(configFlag, EnvConfig); path != "" {
		return path
	}
	return config.DefaultOverridePath
}

// loadPolicies reads the embedded base policy and the override policy at
// path. The override is validated first; validation warnings go through the
// warnings writer and errors abort with ExitConfigError.
//
// Returns:
//   - *config.Configuration: The base policy
//   - *config.Configuration: The override policy, nil when the file is absent or empty
//   - error: Validation or load failure
func loadPolicies(store *config.Store) (*config.Configuration, *config.Configuration, error) {
	base := config.LoadDefault()

	data, err := readFileFunc(store.Path)
	switch {
	case os.IsNotExist(err):
		verbose.Infof("No override policy at %s, using defaults", store.Path)
		return base, nil, nil
	case err != nil:
		return nil, nil, fmt.Errorf("failed to read policy file '%s': %w", store.Path, err)
	}

	result := config.ValidateConfigFile(data)
	for _, w := range result.Warnings {
		warnings.Warnf("%s: %s", store.Path, w)
	}
	if result.HasErrors() {
		verbose.Infof("Exit code %d (config error): policy validation failed for %s", errors.ExitConfigError, store.Path)
		return nil, nil, errors.NewExitErrorf(errors.ExitConfigError,
			"policy validation failed for %s:\n%sRun 'vogue config --validate --verbose' for details",
			store.Path, result.ErrorMessage())
	}

	override, err := store.Load()
	if err != nil {
		return nil, nil, errors.NewExitError(errors.ExitConfigError, err)
	}
	return base, override, nil
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .vogue.yml template file
//   - --validate: Validates the policy file for schema errors
//   - --show-defaults: Displays the default policy
//   - --show-effective: Displays the default policy merged with the override
func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := configPath()

	switch {
	case configInitFlag:
		return createConfigTemplate(out, path)
	case configValidateFlag:
		return validateConfigFile(out, path)
	case configShowDefaultsFlag:
		_, _ = fmt.Fprintln(out, "Default policy:")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprint(out, config.GetDefaultConfig())
		return nil
	case configShowEffectiveFlag:
		return showEffectiveConfig(out, path)
	default:
		return cmd.Help()
	}
}

func showEffectiveConfig(out io.Writer, path string) error {
	base, override, err := loadPolicies(config.NewStore(path))
	if err != nil {
		return err
	}

	data, err := config.Marshal(config.Merge(base, override))
	if err != nil {
		return fmt.Errorf("failed to encode effective policy: %w", err)
	}

	source := path
	if override == nil {
		source = "defaults only"
	}
	_, _ = fmt.Fprintf(out, "Effective policy (%s):\n\n", source)
	_, _ = out.Write(data)
	return nil
}

// validateConfigFile validates the policy file at path and reports errors
// and warnings.
//
// Returns:
//   - error: ExitError with ExitConfigError on read or validation failure
func validateConfigFile(out io.Writer, path string) error {
	data, err := readFileFunc(path)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read policy file '%s': %w", path, err))
	}

	result := config.ValidateConfigFile(data)

	if result.HasErrors() {
		_, _ = fmt.Fprintf(out, "%s Policy validation failed for: %s\n\n", constants.IconError, path)
		result.PrintTo(out, verbose.IsEnabled())
		if !verbose.IsEnabled() {
			_, _ = fmt.Fprintln(out, "\nRun with --verbose for expected values and hints")
		}
		verbose.Infof("Exit code %d (config error): policy validation failed for %s", errors.ExitConfigError, path)
		return errors.NewExitErrorf(errors.ExitConfigError, "policy validation failed")
	}

	if result.HasWarnings() {
		_, _ = fmt.Fprintf(out, "%s Policy valid with warnings: %s\n\n", constants.IconWarn, path)
		for _, w := range result.Warnings {
			_, _ = fmt.Fprintf(out, "  WARNING: %s\n", w)
		}
		return nil
	}

	_, _ = fmt.Fprintf(out, "%s Policy valid: %s\n", constants.IconCheckmarkBox, path)
	return nil
}

// createConfigTemplate writes the sample policy to path unless it exists.
func createConfigTemplate(out io.Writer, path string) error {
	created, err := config.WriteTemplate(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if !created {
		return errors.NewExitErrorf(errors.ExitConfigError, "%s already exists", path)
	}
	_, _ = fmt.Fprintf(out, "Created %s\n", path)
	return nil
}
