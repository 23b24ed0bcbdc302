package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// Build information. Populated at build-time via ldflags:
//
//	go build -ldflags "-X github.com/ajxudir/vogue/cmd.Version=v1.2.0 -X github.com/ajxudir/vogue/cmd.GitCommit=$(git rev-parse HEAD)"
var (
	// Version is the semantic version of the binary ("dev" for local builds).
	Version = "dev"

	// BuildTime is the UTC build timestamp.
	BuildTime = ""

	// GitCommit is the commit the binary was built from.
	GitCommit = ""

	// BuildOS and BuildArch are the target platform, when cross-compiled.
	BuildOS   = ""
	BuildArch = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		printVersionOutput(cmd.OutOrStdout())
	},
}

// printVersionOutput prints version, build, and runtime information.
//
// The runtime platform is shown only when it differs from the build target.
func printVersionOutput(w io.Writer) {
	buildOS, buildArch := getBuildTarget()
	_, _ = fmt.Fprintf(w, "  Build:   %s/%s\n", buildOS, buildArch)

	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		_, _ = fmt.Fprintf(w, "  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	_, _ = fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		_, _ = fmt.Fprintf(w, "  Date:    %s\n", BuildTime)
	}
	if GitCommit != "" {
		_, _ = fmt.Fprintf(w, "  Git:     %s\n", GitCommit)
	}
	_, _ = fmt.Fprintf(w, "  Version: %s\n", Version)
}

// getBuildTarget returns the build OS and architecture, defaulting to the
// runtime platform when they were not set at build time.
func getBuildTarget() (string, string) {
	buildOS := BuildOS
	buildArch := BuildArch

	if buildOS == "" {
		buildOS = runtime.GOOS
	}
	if buildArch == "" {
		buildArch = runtime.GOARCH
	}

	return buildOS, buildArch
}

// IsDevBuild reports whether the binary was built without a version tag.
func IsDevBuild() bool {
	return Version == "dev"
}
