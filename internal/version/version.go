// Package version holds build metadata injected via ldflags.
package version

// Version and Commit are set at build time via
// -ldflags "-X .../internal/version.Version=... -X .../internal/version.Commit=...".
var (
	Version = "dev"
	Commit  = "unknown"
)
