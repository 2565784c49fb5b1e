// Package version exposes the build version.
package version

// version is set at build time via -ldflags.
//
//nolint:gochecknoglobals // Build-time injection target.
var version = "dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
