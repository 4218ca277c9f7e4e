package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var logoutCommand = &cli.Command{
	Name:   "logout",
	Usage:  "Log out of courtside",
	Action: logout,
}

func logout(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("logout requires no arguments")
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting courtside client")
	}

	// Even if the session wasn't found and deleted server-side, the local
	// token still gets destroyed.
	if err = client.Sessions().Delete(c.Context); err != nil {
		logr.FromContextOrDiscard(c.Context).V(1).Info(
			"error deleting session",
			"error",
			err.Error(),
		)
	}

	if err := deleteConfig(); err != nil {
		return errors.Wrap(err, "error deleting configuration")
	}

	fmt.Println("Logout was successful.")

	return nil
}
