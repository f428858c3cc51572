// Package version holds build information shared by every entry point.
package version

// Set at build time using ldflags, e.g.
// -X github.com/junkd0g/linechart/internal/version.Version=v1.2.0
var (
	Version   = "dev"
	GitCommit = "unknown"
)
