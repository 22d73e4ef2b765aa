// Package version holds build metadata for the confit binary.
package version

// Build information (overridden via ldflags during release builds)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
