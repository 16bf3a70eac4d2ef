// Package version holds the build metadata of the talentstake binary.
package version

import (
	"fmt"
	"runtime"
)

var (
	// AppVersion represents the application version, set during build.
	AppVersion = ""
	// GitCommit represents the git commit hash, set during build.
	GitCommit = ""
	// BuildDate represents the build date, set during build.
	BuildDate = ""

	// GoVersion represents the Go version used for building.
	GoVersion = ""
	// GoArch represents the target architecture.
	GoArch = ""
)

func init() {
	if len(AppVersion) == 0 {
		AppVersion = "dev"
	}
	if len(GitCommit) == 0 {
		GitCommit = "unknown"
	}
	if len(BuildDate) == 0 {
		BuildDate = "unknown"
	}

	GoVersion = runtime.Version()
	GoArch = runtime.GOARCH
}

// Info is the build metadata in a printable form.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build metadata of the running binary.
func Get() Info {
	return Info{
		Version:   AppVersion,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + GoArch,
	}
}

// Version returns a formatted version string with build information.
func Version() string {
	return fmt.Sprintf(
		"Talent Stake %s (%s)\nCompiled at %s using Go %s (%s)",
		AppVersion,
		GitCommit,
		BuildDate,
		GoVersion,
		GoArch,
	)
}
