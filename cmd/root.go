// Package cmd implements the command-line interface for vogue.
// It provides commands for reporting dependency upgrades against the
// upgrade policy, suppressing violations, and managing the policy file.
package cmd

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ajxudir/vogue/pkg/errors"
	"github.com/ajxudir/vogue/pkg/verbose"
)

// Environment variables consulted when the matching flag is not given.
const (
	EnvConfig = "VOGUE_CONFIG"
	EnvReport = "VOGUE_REPORT"
)

var exitFunc = os.Exit
var nowFunc = time.Now

var (
	verboseFlag bool
	versionFlag bool
	noColorFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:           "vogue",
	Short:         "Dependency upgrade policy checker",
	Long:          `Compare resolved dependency versions against an upgrade policy and report warnings, violations and suppressions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		if verboseFlag {
			verbose.Enable()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput(cmd.OutOrStdout())
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 1: Partial failure (some dependencies could not be evaluated)
//   - 2: Rule violations or another failure
//   - 3: Configuration error (invalid policy, stale suppressions, missing report)
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		errors.PrintErrorWithHints(rootCmd.ErrOrStderr(), []error{err}, verbose.IsEnabled())
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
func ExecuteTest() error {
	return rootCmd.Execute()
}

// envOr returns value, or the environment variable key when value is empty.
func envOr(value, key string) string {
	if value != "" {
		return value
	}
	return os.Getenv(key)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable coloured output (also honours NO_COLOR)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Override policy file (default .vogue.yml, env "+EnvConfig+")")

	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(suppressCmd)
}
