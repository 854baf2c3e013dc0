package version

import "fmt"

// Build metadata. Release builds override it with
// -ldflags "-X github.com/oshokin/project-template/internal/version.Version=...".
var (
	// Version is the release the binary was built from, in the same form as the manifest version.
	Version = "0.1.0"
	// Commit is the short git SHA, or "none" for local builds.
	Commit = "none"
	// BuildTime is the UTC build timestamp, or "unknown" for local builds.
	BuildTime = "unknown"
)

// Short returns the bare version.
func Short() string {
	return Version
}

// Full returns the version followed by the commit and build time.
func Full() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime)
}
