package buildinfo

import (
	"errors"
	"fmt"
)

// ErrMalformedVersion matches any *MalformedVersionError via errors.Is.
var ErrMalformedVersion = errors.New("buildinfo: malformed version")

// Field names used in errors and in the structured record.
const (
	FieldPackageVersion  = "package_version"
	FieldCompilerVersion = "compiler_version"
)

// MalformedVersionError reports a version field that is not a semantic version.
type MalformedVersionError struct {
	Field string
	Text  string
	Err   error
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("buildinfo: %s %q is not a semantic version: %v", e.Field, e.Text, e.Err)
}

func (e *MalformedVersionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedVersion.
func (e *MalformedVersionError) Is(target error) bool {
	return target == ErrMalformedVersion
}
