package generate

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"strconv"
	"strings"
	"text/template"
)

// DefaultOutput is the file name written into the consumer package.
const DefaultOutput = "zz_buildinfo.go"

var fileTemplate = template.Must(template.New("buildinfo").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Code generated by lbi generate; DO NOT EDIT.
// Inputs: target={{quote .Target}} profile={{quote .Profile}}

package {{.Package}}

import "github.com/launchbynttdata/launch-build-info/buildinfo"

const (
	buildPackageVersion = {{quote .PackageVersion}}
	buildRevision = {{quote .Revision}}
	buildCompilerVersion = {{quote .CompilerVersion}}
	buildTarget = {{quote .Target}}
	buildProfile = {{quote .Profile}}
)

// rawBuildInfo returns the build metadata frozen into this package.
func rawBuildInfo() buildinfo.RawInfo {
	return buildinfo.RawInfo{
		PackageVersion: buildPackageVersion,
		Revision: buildRevision,
		CompilerVersion: buildCompilerVersion,
		Target: buildTarget,
		Profile: buildProfile,
	}
}

// buildInfoString returns the canonical build info line, computed once.
var buildInfoString = buildinfo.LazyString(rawBuildInfo)
`))

// Render produces the gofmt'd source declaring consts in package pkg.
func Render(pkg string, consts Constants) ([]byte, error) {
	if pkg == "" {
		return nil, &MissingBuildEnvironmentError{Name: EnvGOPACKAGE}
	}
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("generate: invalid package name %q", pkg)
	}
	if strings.HasSuffix(pkg, "_test") {
		return nil, fmt.Errorf("generate: package %q is an external test package; run go generate from a non-test file", pkg)
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Constants
		Package string
	}{Constants: consts, Package: pkg})
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

// WriteIfChanged writes content to path unless the file already holds exactly
// that content, so tools that watch modification times see a change only when
// one of the captured values changed.
func WriteIfChanged(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	switch {
	case err == nil && bytes.Equal(existing, content):
		return false, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil { // #nosec G306 -- generated source is world-readable
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
