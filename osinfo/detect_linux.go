//go:build linux

package osinfo

import (
	"os"

	"golang.org/x/sys/unix"
)

var releaseFiles = []string{"/etc/os-release", "/usr/lib/os-release"}

func detect() Info {
	machine, release := uname()
	return detectFrom(releaseFiles, machine, release)
}

// detectFrom reads the first readable os-release file in paths. Without one
// the kernel release stands in for the version.
func detectFrom(paths []string, machine, release string) Info {
	info := Info{Type: "Linux", Version: release}
	for _, path := range paths {
		values, ok := readOSRelease(path)
		if !ok {
			continue
		}
		if parsed := fromOSRelease(values); parsed.Type != "" {
			info = parsed
		}
		break
	}

	info.Architecture = machine
	info.Bitness = bitnessFromMachine(machine)
	return info
}

func readOSRelease(path string) (map[string]string, bool) {
	f, err := os.Open(path) // #nosec G304 -- os-release locations
	if err != nil {
		return nil, false
	}
	defer f.Close()

	values, err := parseOSRelease(f)
	if err != nil {
		return nil, false
	}
	return values, true
}

func uname() (machine, release string) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", ""
	}
	return unix.ByteSliceToString(u.Machine[:]), unix.ByteSliceToString(u.Release[:])
}
