package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotFound indicates the requested executable is not on PATH.
var ErrNotFound = errors.New("command: executable not found")

// Runner executes external commands and returns their standard output.
type Runner interface {
	// Output runs name with args in dir (empty means the current directory)
	// and returns stdout. A non-zero exit is reported as an error that
	// includes the trimmed stderr.
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Env, when non-nil, replaces the inherited process environment.
	Env []string
}

// Output implements Runner.
func (r ExecRunner) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	cmd := exec.CommandContext(ctx, path, args...) // #nosec G204 -- callers pass fixed tool names
	cmd.Dir = dir
	if r.Env != nil {
		cmd.Env = r.Env
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("running %s %s: %w", name, strings.Join(args, " "), err)
		}
		return nil, fmt.Errorf("running %s %s: %w: %s", name, strings.Join(args, " "), err, msg)
	}
	return out, nil
}
