package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/krancour/courtside/internal/logging"
	"github.com/krancour/courtside/internal/version"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "courtside"
	app.Usage = "Sign in and review court reservations"
	app.Version = fmt.Sprintf(
		"%s -- commit %s",
		version.Version(),
		version.Commit(),
	)
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure API server connections when using TLS",
		},
		&cli.BoolFlag{
			Name:  flagVerbose,
			Usage: "Log details of API calls to stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool(flagVerbose) {
			c.Context = logr.NewContext(c.Context, logging.NewPrettyLogger(1))
		}
		return nil
	}
	app.Commands = []*cli.Command{
		loginCommand,
		logoutCommand,
		reservationsCommand,
		sessionCommand,
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	fmt.Println()
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		stop()
		os.Exit(1)
	}
	fmt.Println()
}
