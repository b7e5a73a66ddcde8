package buildinfo

import (
	semver "github.com/blang/semver/v4"

	"github.com/launchbynttdata/launch-build-info/osinfo"
)

// CompilerPrefix precedes the compiler version in the rendered line.
const CompilerPrefix = "go"

// Info is the validated form of RawInfo. Treat values as immutable; compare
// them with Equal.
type Info struct {
	PackageVersion  semver.Version
	Revision        string
	CompilerVersion semver.Version
	Target          string
	Profile         string
	OS              osinfo.Info
}

// New validates raw and queries the running operating system. It returns a
// *MalformedVersionError when PackageVersion or CompilerVersion is not a
// semantic version.
func New(raw RawInfo) (Info, error) {
	return newInfo(raw, osinfo.Get())
}

// MustNew is like New but panics on a malformed version. Embedded metadata
// that does not parse means the build pipeline is broken.
func MustNew(raw RawInfo) Info {
	info, err := New(raw)
	if err != nil {
		panic(err)
	}
	return info
}

func newInfo(raw RawInfo, host osinfo.Info) (Info, error) {
	pkgVersion, err := parseField(FieldPackageVersion, raw.PackageVersion)
	if err != nil {
		return Info{}, err
	}
	compilerVersion, err := parseField(FieldCompilerVersion, raw.CompilerVersion)
	if err != nil {
		return Info{}, err
	}
	return Info{
		PackageVersion:  pkgVersion,
		Revision:        raw.Revision,
		CompilerVersion: compilerVersion,
		Target:          raw.Target,
		Profile:         raw.Profile,
		OS:              host.Normalize(),
	}, nil
}

func parseField(field, text string) (semver.Version, error) {
	version, err := semver.Parse(text)
	if err != nil {
		return semver.Version{}, &MalformedVersionError{Field: field, Text: text, Err: err}
	}
	return version, nil
}

// Equal reports whether both values hold the same fields. Versions are
// compared by their full text, so build metadata counts. An empty OS bitness
// is stored as osinfo.BitnessUnknown, so the two compare equal.
func (i Info) Equal(other Info) bool {
	return i.PackageVersion.String() == other.PackageVersion.String() &&
		i.Revision == other.Revision &&
		i.CompilerVersion.String() == other.CompilerVersion.String() &&
		i.Target == other.Target &&
		i.Profile == other.Profile &&
		i.OS == other.OS
}

// String renders the canonical single line
//
//	<package_version> <revision> <target> <profile> go<compiler_version> <os>
//
// Tools split this line on spaces, so the order is fixed.
func (i Info) String() string {
	return i.PackageVersion.String() + " " +
		i.Revision + " " +
		i.Target + " " +
		i.Profile + " " +
		CompilerPrefix + i.CompilerVersion.String() + " " +
		i.OS.String()
}
