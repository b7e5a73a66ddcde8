package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/launchbynttdata/launch-build-info/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lbi: %v\n", err)
		os.Exit(1)
	}
}
