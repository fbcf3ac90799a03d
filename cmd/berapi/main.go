package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MCBE-Utilities/BeRAPI/internal/cli"
)

func main() {
	// Cancel in-flight requests on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
