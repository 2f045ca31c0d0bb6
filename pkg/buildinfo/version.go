// Package buildinfo provides build-time version information for the
// volare CLI, set via ldflags.
package buildinfo

import "fmt"

var (
	// Version is set via ldflags: -X .../pkg/buildinfo.Version=...
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
