package vcs

import (
	"context"
	"errors"
	"testing"
)

type fakeRunner struct {
	out     string
	err     error
	lastDir string
	args    []string
}

func (f *fakeRunner) Output(_ context.Context, dir, _ string, args ...string) ([]byte, error) {
	f.lastDir = dir
	f.args = args
	return []byte(f.out), f.err
}

func TestRevisionTrimsOutput(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{out: "v1.2.3-4-gabcd123-modified\n"}
	rev, err := Revision(context.Background(), runner, "/src/app")
	if err != nil {
		t.Fatalf("revision: %v", err)
	}
	if rev != "v1.2.3-4-gabcd123-modified" {
		t.Fatalf("revision: got %q", rev)
	}
	if runner.lastDir != "/src/app" {
		t.Fatalf("dir: want /src/app got %q", runner.lastDir)
	}
	if runner.args[len(runner.args)-1] != "--dirty=-modified" {
		t.Fatalf("expected dirty flag, got %v", runner.args)
	}
}

func TestRevisionReportsMissingRepository(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{err: errors.New("fatal: not a git repository")}
	if _, err := Revision(context.Background(), runner, t.TempDir()); !errors.Is(err, ErrNoRevision) {
		t.Fatalf("expected ErrNoRevision, got %v", err)
	}
}

func TestRevisionRejectsEmptyOutput(t *testing.T) {
	t.Parallel()

	if _, err := Revision(context.Background(), &fakeRunner{out: "  \n"}, ""); !errors.Is(err, ErrNoRevision) {
		t.Fatalf("expected ErrNoRevision, got %v", err)
	}
}
