package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String formats the build stamp for `metricard version`.
func String() string {
	return fmt.Sprintf("metricard %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
