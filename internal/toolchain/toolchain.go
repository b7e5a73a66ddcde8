// Package toolchain discovers the version of the Go toolchain that is
// compiling the consumer program.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	semver "github.com/blang/semver/v4"

	"github.com/launchbynttdata/launch-build-info/internal/command"
)

// ErrUnrecognized indicates the toolchain reported a version that cannot be
// mapped onto semver, such as a development build.
var ErrUnrecognized = errors.New("toolchain: unrecognized go version")

// Version asks the go command for GOVERSION and parses it.
func Version(ctx context.Context, runner command.Runner) (semver.Version, error) {
	out, err := runner.Output(ctx, "", "go", "env", "GOVERSION")
	if err != nil {
		return semver.Version{}, fmt.Errorf("querying go version: %w", err)
	}
	return Parse(string(out))
}

// Parse converts a Go release string (go1.22.3, go1.22, go1.21rc2) into a
// semantic version. Experiment suffixes such as " X:boringcrypto" are ignored.
func Parse(goVersion string) (semver.Version, error) {
	fields := strings.Fields(goVersion)
	if len(fields) == 0 {
		return semver.Version{}, fmt.Errorf("%w: empty", ErrUnrecognized)
	}
	raw := fields[0]
	if !strings.HasPrefix(raw, "go") || raw == "go" {
		return semver.Version{}, fmt.Errorf("%w: %q", ErrUnrecognized, goVersion)
	}
	raw = strings.TrimPrefix(raw, "go")

	release, pre := splitPrerelease(raw)
	version, err := semver.ParseTolerant(release)
	if err != nil {
		return semver.Version{}, fmt.Errorf("%w: %q: %w", ErrUnrecognized, goVersion, err)
	}
	if len(version.Pre) > 0 || len(version.Build) > 0 {
		return semver.Version{}, fmt.Errorf("%w: %q", ErrUnrecognized, goVersion)
	}
	if pre != "" {
		label, err := semver.NewPRVersion(pre)
		if err != nil {
			return semver.Version{}, fmt.Errorf("%w: %q: %w", ErrUnrecognized, goVersion, err)
		}
		version.Pre = []semver.PRVersion{label}
	}
	return version, nil
}

// splitPrerelease separates "1.21rc2" into "1.21" and "rc2".
func splitPrerelease(raw string) (string, string) {
	for i, r := range raw {
		if r != '.' && (r < '0' || r > '9') {
			return raw[:i], raw[i:]
		}
	}
	return raw, ""
}
