// Package version provides version information and build metadata for dirtidy.
//
// Version Information Sources:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Fallback defaults for development builds
//
// Build Integration:
//
//	-ldflags "-X github.com/dendrascience/dirtidy/version.Version=v1.0.0 -X github.com/dendrascience/dirtidy/version.Commit=abc123"
package version
