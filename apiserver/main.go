package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/krancour/courtside/internal/logging"
	"github.com/krancour/courtside/internal/version"
)

func main() {
	logger := logging.NewJSONLogger(verbosityFromEnvironment())
	logger.Info(
		"Starting courtside API server",
		"version",
		version.Version(),
		"commit",
		version.Commit(),
	)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	ctx = logr.NewContext(ctx, logger)

	apiServer, err := getAPIServerFromEnvironment(ctx, logger)
	if err != nil {
		logger.Error(err, "error configuring API server")
		os.Exit(1)
	}

	if err = apiServer.ListenAndServe(ctx); err != nil {
		logger.Error(err, "API server stopped")
		os.Exit(1)
	}
}
