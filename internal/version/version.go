// Package version exposes build metadata injected via -ldflags.
package version

import "fmt"

// Build metadata, overridden at link time.
var (
	// Version is the semantic version of the binary.
	Version = "1.0.0"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns just the semantic version.
func Short() string {
	return Version
}

// Full returns the version together with the commit and build time.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
