// Package version holds build metadata shared by the skateplan binaries.
package version

// Set at build time, e.g.
// -ldflags "-X skateplan/pkg/version.Version=v1.2.0 -X skateplan/pkg/version.Commit=$(git rev-parse --short HEAD)".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
