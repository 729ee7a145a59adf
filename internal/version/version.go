// Package version holds build metadata, set via -ldflags at release time.
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// String returns the version line shown by --version.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + BuildDate + ")"
}
