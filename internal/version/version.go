// Package version exposes the lbi binary's own build metadata, captured by
// lbi itself.
package version

import "github.com/launchbynttdata/launch-build-info/buildinfo"

//go:generate go run github.com/launchbynttdata/launch-build-info generate --profile release --package-version 0.1.0

// Raw returns the metadata frozen into this binary.
func Raw() buildinfo.RawInfo {
	return rawBuildInfo()
}

// Summary returns the canonical build info line. It is computed once per process.
func Summary() string {
	return buildInfoString()
}
