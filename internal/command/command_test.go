package command

import (
	"context"
	"errors"
	"testing"
)

func TestExecRunnerReportsMissingExecutable(t *testing.T) {
	t.Parallel()

	_, err := ExecRunner{}.Output(context.Background(), "", "lbi-definitely-not-installed")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
