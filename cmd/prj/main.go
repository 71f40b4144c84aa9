package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	rootcmd "github.com/go-ports/prj/cmd/prj/root"
	"github.com/go-ports/prj/internal/runner"
)

func main() {
	if err := run(); err != nil {
		// A child that exited on its own has already reported its failure.
		var exitErr *runner.ExitError
		if !errors.As(err, &exitErr) || exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(runner.ExitCode(err))
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return rootcmd.New().ExecuteContext(ctx)
}
