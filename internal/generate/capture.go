// Package generate captures build-environment facts and freezes them into a
// generated Go source file.
package generate

import (
	"context"
	"fmt"

	semver "github.com/blang/semver/v4"
	"go.uber.org/zap"

	"github.com/launchbynttdata/launch-build-info/buildinfo"
	"github.com/launchbynttdata/launch-build-info/internal/command"
	"github.com/launchbynttdata/launch-build-info/internal/config"
	"github.com/launchbynttdata/launch-build-info/internal/toolchain"
	"github.com/launchbynttdata/launch-build-info/internal/vcs"
)

// Environment variables read during capture. GOOS, GOARCH and GOPACKAGE are
// exported by go generate.
const (
	EnvTarget         = "LBI_TARGET"
	EnvProfile        = "LBI_PROFILE"
	EnvPackageVersion = "LBI_PACKAGE_VERSION"
	EnvGOOS           = "GOOS"
	EnvGOARCH         = "GOARCH"
	EnvGOPACKAGE      = "GOPACKAGE"
)

// Inputs are the values resolved from flags and environment before capture.
type Inputs struct {
	PackageVersion string
	Target         string
	Profile        string
	// Dir is the working tree used for the revision lookup.
	Dir string
}

// Constants are the values frozen into the generated file.
type Constants struct {
	PackageVersion  string
	Revision        string
	CompilerVersion string
	Target          string
	Profile         string
}

// ResolveTarget returns LBI_TARGET when set, otherwise GOOS/GOARCH.
func ResolveTarget(resolver config.Resolver) (string, error) {
	if target, ok := resolver.Lookup(EnvTarget); ok {
		return target, nil
	}
	goos, ok := resolver.Lookup(EnvGOOS)
	if !ok {
		return "", &MissingBuildEnvironmentError{Name: EnvGOOS}
	}
	goarch, ok := resolver.Lookup(EnvGOARCH)
	if !ok {
		return "", &MissingBuildEnvironmentError{Name: EnvGOARCH}
	}
	return goos + "/" + goarch, nil
}

// Capturer resolves the values that only exist at build time.
type Capturer struct {
	runner command.Runner
	logger *zap.Logger
}

// NewCapturer creates a Capturer that shells out through runner.
func NewCapturer(runner command.Runner, logger *zap.Logger) Capturer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Capturer{runner: runner, logger: logger}
}

// Capture validates in and queries the toolchain and source control. A
// toolchain that cannot report a usable version fails the capture; a missing
// revision falls back to buildinfo.UnknownRevision.
func (c Capturer) Capture(ctx context.Context, in Inputs) (Constants, error) {
	if in.Target == "" {
		return Constants{}, &MissingBuildEnvironmentError{Name: EnvTarget}
	}
	if in.Profile == "" {
		return Constants{}, &MissingBuildEnvironmentError{Name: EnvProfile}
	}

	compiler, err := toolchain.Version(ctx, c.runner)
	if err != nil {
		return Constants{}, fmt.Errorf("resolving compiler version: %w", err)
	}

	revision, err := vcs.Revision(ctx, c.runner, in.Dir)
	if err != nil {
		c.logger.Debug("revision unavailable, using fallback",
			zap.String("dir", in.Dir),
			zap.String("fallback", buildinfo.UnknownRevision),
			zap.Error(err),
		)
		revision = buildinfo.UnknownRevision
	}

	pkgVersion := in.PackageVersion
	if pkgVersion == "" {
		pkgVersion = buildinfo.DevVersion
	}
	if _, err := semver.Parse(pkgVersion); err != nil {
		c.logger.Warn("package version is not a semantic version; buildinfo.New will reject it",
			zap.String("packageVersion", pkgVersion),
			zap.Error(err),
		)
	}

	consts := Constants{
		PackageVersion:  pkgVersion,
		Revision:        revision,
		CompilerVersion: compiler.String(),
		Target:          in.Target,
		Profile:         in.Profile,
	}
	c.logger.Debug("build metadata captured",
		zap.String("packageVersion", consts.PackageVersion),
		zap.String("revision", consts.Revision),
		zap.String("compilerVersion", consts.CompilerVersion),
		zap.String("target", consts.Target),
		zap.String("profile", consts.Profile),
	)
	return consts, nil
}
