// Package version holds build metadata stamped in at link time.
package version

import "fmt"

// Build information, overridden with
// -ldflags "-X github.com/arthur-debert/cascade/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version with its commit, e.g. "1.2.0 (abc1234)".
func Short() string {
	if Commit == "unknown" || Commit == "" {
		return Version
	}
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}
