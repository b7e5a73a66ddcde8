package buildinfo

import (
	"runtime/debug"
	"strings"

	"github.com/launchbynttdata/launch-build-info/internal/toolchain"
)

const (
	// UnknownRevision is used when no source-control revision could be determined.
	UnknownRevision = "unknown"
	// UnknownProfile is used when the build profile is not recorded.
	UnknownProfile = "unknown"
	// DevVersion is used when the package version is not recorded.
	DevVersion = "0.0.0-dev"

	shortRevisionLen = 7
	modifiedSuffix   = "-modified"
)

// RawInfo is the unvalidated snapshot compiled into a program. Any text is
// accepted in every field.
type RawInfo struct {
	// PackageVersion is the version of the consumer package.
	PackageVersion string
	// Revision identifies the source snapshot, or UnknownRevision.
	Revision string
	// CompilerVersion is the Go toolchain version without the "go" prefix.
	CompilerVersion string
	// Target is the GOOS/GOARCH pair the binary was compiled for.
	Target string
	// Profile names the build profile (e.g. release, debug).
	Profile string
}

// FromModule builds a RawInfo from the module metadata the go command embeds
// in every binary. It is a fallback for programs that do not run the generate
// step; the profile is always UnknownProfile.
func FromModule() RawInfo {
	bi, ok := debug.ReadBuildInfo()
	return fromBuildInfo(bi, ok)
}

func fromBuildInfo(bi *debug.BuildInfo, ok bool) RawInfo {
	raw := RawInfo{
		PackageVersion: DevVersion,
		Revision:       UnknownRevision,
		Profile:        UnknownProfile,
	}
	if !ok || bi == nil {
		return raw
	}

	if v := bi.Main.Version; v != "" && v != "(devel)" {
		raw.PackageVersion = strings.TrimPrefix(v, "v")
	}

	raw.CompilerVersion = strings.TrimPrefix(bi.GoVersion, "go")
	if parsed, err := toolchain.Parse(bi.GoVersion); err == nil {
		raw.CompilerVersion = parsed.String()
	}

	var goos, goarch, revision string
	modified := false
	for _, s := range bi.Settings {
		switch s.Key {
		case "GOOS":
			goos = s.Value
		case "GOARCH":
			goarch = s.Value
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if goos != "" && goarch != "" {
		raw.Target = goos + "/" + goarch
	}
	if revision != "" {
		if len(revision) > shortRevisionLen {
			revision = revision[:shortRevisionLen]
		}
		if modified {
			revision += modifiedSuffix
		}
		raw.Revision = revision
	}
	return raw
}
