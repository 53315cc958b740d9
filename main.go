package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/tablero/cmd"
	"github.com/thenoetrevino/tablero/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.Execute(ctx)
	stop()
	if err == nil {
		return
	}

	// Errors from command handlers were already reported
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
