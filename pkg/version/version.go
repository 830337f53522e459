// Package version carries build metadata injected via ldflags.
package version

// Build metadata. Overridden at build time with:
//
//	-ldflags "-X .../pkg/version.Version=v1.2.3 ..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
