package version

import (
	"strings"
	"testing"

	"github.com/launchbynttdata/launch-build-info/buildinfo"
)

func TestRawValidates(t *testing.T) {
	info, err := buildinfo.New(Raw())
	if err != nil {
		t.Fatalf("embedded metadata does not validate: %v", err)
	}
	if info.Profile == "" || info.Target == "" {
		t.Fatalf("expected target and profile, got %+v", info)
	}
}

func TestSummaryIsStable(t *testing.T) {
	first := Summary()
	if first != Summary() {
		t.Fatal("summary changed between calls")
	}

	raw := Raw()
	prefix := strings.Join([]string{raw.PackageVersion, raw.Revision, raw.Target, raw.Profile, "go" + raw.CompilerVersion}, " ") + " "
	if !strings.HasPrefix(first, prefix) {
		t.Fatalf("summary %q does not start with %q", first, prefix)
	}
}
