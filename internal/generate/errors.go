package generate

import (
	"errors"
	"fmt"
)

// ErrMissingBuildEnvironment matches any *MissingBuildEnvironmentError via errors.Is.
var ErrMissingBuildEnvironment = errors.New("generate: missing build environment")

// MissingBuildEnvironmentError reports a value the build driver was expected
// to supply. Its absence means the build environment is broken.
type MissingBuildEnvironmentError struct {
	Name string
}

func (e *MissingBuildEnvironmentError) Error() string {
	return fmt.Sprintf("generate: required build environment value %s is not set", e.Name)
}

// Is reports whether target is ErrMissingBuildEnvironment.
func (e *MissingBuildEnvironmentError) Is(target error) bool {
	return target == ErrMissingBuildEnvironment
}
