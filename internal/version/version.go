// Package version exposes the build version of the tool.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/gsetwacom/gsetwacom/internal/version.Version=v1.2.3"
//
// When unset they are populated from Go build info where available.
var (
	// Version is the semantic version of the tool.
	Version = ""
	// Commit is the git commit hash.
	Commit = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if Commit == "" && len(setting.Value) >= 7 {
					Commit = setting.Value[:7]
				}
			case "vcs.modified":
				if setting.Value == "true" && Commit != "" {
					Commit += "-dirty"
				}
			}
		}
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// Full returns the full version string including commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
