//go:build linux

package osinfo

import (
	"os"
	"path/filepath"
	"testing"
)

const debianRelease = `NAME="Debian GNU/Linux"
VERSION_ID="12"
VERSION_CODENAME=bookworm
`

func writeRelease(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDetectFromPrefersFirstReleaseFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	etc := writeRelease(t, dir, "etc-os-release", ubuntuRelease)
	lib := writeRelease(t, dir, "lib-os-release", debianRelease)

	info := detectFrom([]string{etc, lib}, "x86_64", "6.8.0-generic")
	want := Info{Type: "Ubuntu", Version: "22.04", Codename: "jammy", Bitness: Bitness64, Architecture: "x86_64"}
	if info != want {
		t.Fatalf("want %+v got %+v", want, info)
	}
}

func TestDetectFromFallsBackToUsrLib(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "etc-os-release")
	lib := writeRelease(t, dir, "lib-os-release", debianRelease)

	info := detectFrom([]string{missing, lib}, "aarch64", "6.1.0-18-arm64")
	want := Info{Type: "Debian GNU/Linux", Version: "12", Codename: "bookworm", Bitness: Bitness64, Architecture: "aarch64"}
	if info != want {
		t.Fatalf("want %+v got %+v", want, info)
	}
}

func TestDetectFromFallsBackToKernelRelease(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "etc-os-release"), filepath.Join(dir, "lib-os-release")}

	info := detectFrom(paths, "i686", "5.10.0-28-686")
	want := Info{Type: "Linux", Version: "5.10.0-28-686", Bitness: Bitness32, Architecture: "i686"}
	if info != want {
		t.Fatalf("want %+v got %+v", want, info)
	}
	if got := info.String(); got != "Linux 5.10.0-28-686 [32-bit]" {
		t.Fatalf("rendering: want %s got %s", "Linux 5.10.0-28-686 [32-bit]", got)
	}
}

func TestDetectFromKeepsKernelReleaseWhenNameMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	etc := writeRelease(t, dir, "etc-os-release", "# no identifying keys\nHOME_URL=https://example.org/\n")
	lib := writeRelease(t, dir, "lib-os-release", debianRelease)

	info := detectFrom([]string{etc, lib}, "x86_64", "6.8.0")
	if info.Type != "Linux" || info.Version != "6.8.0" {
		t.Fatalf("want Linux 6.8.0 got %s %s", info.Type, info.Version)
	}
}

func TestDetectUsesUname(t *testing.T) {
	t.Parallel()

	machine, release := uname()
	info := detectFrom(nil, machine, release)
	if info.Type != "Linux" || info.Version != release {
		t.Fatalf("want Linux %s got %s %s", release, info.Type, info.Version)
	}
	if info.Architecture != machine {
		t.Fatalf("architecture: want %s got %s", machine, info.Architecture)
	}
}
