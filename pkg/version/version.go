package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the current version of the application
	Version = "0.1.0-dev"

	// GitCommit is the git commit hash (set during build, falls back to VCS build info)
	GitCommit = "unknown"

	// BuildDate is the build date (set during build, falls back to VCS build info)
	BuildDate = "unknown"
)

// Info returns formatted version information
func Info() string {
	commit, built := GitCommit, BuildDate
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "unknown":
				commit = s.Value
			case s.Key == "vcs.time" && built == "unknown":
				built = s.Value
			}
		}
	}
	return fmt.Sprintf("fixture-setup version %s (commit: %s, built: %s)",
		Version, commit, built)
}
