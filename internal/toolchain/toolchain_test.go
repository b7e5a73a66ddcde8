package toolchain

import (
	"context"
	"errors"
	"testing"
)

type fakeRunner struct {
	out      string
	err      error
	lastName string
	lastArgs []string
}

func (f *fakeRunner) Output(_ context.Context, _ string, name string, args ...string) ([]byte, error) {
	f.lastName = name
	f.lastArgs = args
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.out), nil
}

func TestParseAcceptsReleaseForms(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"go1.22.3":                "1.22.3",
		"go1.22":                  "1.22.0",
		"go1.21rc2":               "1.21.0-rc2",
		"go1.20beta1":             "1.20.0-beta1",
		"go1.22.3 X:boringcrypto": "1.22.3",
		"go1.25.8\n":              "1.25.8",
	}

	for input, want := range cases {
		got, err := Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if got.String() != want {
			t.Fatalf("parse %q: want %s got %s", input, want, got.String())
		}
	}
}

func TestParseRejectsDevelAndGarbage(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "devel go1.23-abc123 Mon Jan 1", "1.22.3", "go", "goabc"} {
		if _, err := Parse(input); !errors.Is(err, ErrUnrecognized) {
			t.Fatalf("parse %q: expected ErrUnrecognized, got %v", input, err)
		}
	}
}

func TestVersionQueriesGoEnv(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{out: "go1.24.5\n"}
	version, err := Version(context.Background(), runner)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if version.String() != "1.24.5" {
		t.Fatalf("version: want 1.24.5 got %s", version.String())
	}
	if runner.lastName != "go" || len(runner.lastArgs) != 2 || runner.lastArgs[1] != "GOVERSION" {
		t.Fatalf("unexpected invocation: %s %v", runner.lastName, runner.lastArgs)
	}
}

func TestVersionPropagatesRunnerFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("no go")
	if _, err := Version(context.Background(), &fakeRunner{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected runner error, got %v", err)
	}
}
