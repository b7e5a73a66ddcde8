// Package vcs resolves the source-control revision of a working tree.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/launchbynttdata/launch-build-info/internal/command"
)

// ErrNoRevision indicates no revision could be determined, e.g. git is not
// installed or dir is not inside a repository.
var ErrNoRevision = errors.New("vcs: no revision available")

// DirtySuffix is appended to the revision when the work tree has local changes.
const DirtySuffix = "-modified"

// Revision returns a short identifier for the commit checked out in dir,
// as reported by `git describe --always --dirty`.
func Revision(ctx context.Context, runner command.Runner, dir string) (string, error) {
	out, err := runner.Output(ctx, dir, "git", "describe", "--always", "--dirty="+DirtySuffix)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoRevision, err)
	}
	rev := strings.TrimSpace(string(out))
	if rev == "" {
		return "", ErrNoRevision
	}
	return rev, nil
}
