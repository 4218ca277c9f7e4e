package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/go-logr/logr"
	"github.com/krancour/courtside/sdk/api"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "Log in to courtside",
	Description: "Initiates authentication using OpenID Connect. Complete " +
		"authentication in a web browser, then use `courtside session` to " +
		"confirm.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagServer,
			Aliases: []string{"s"},
			Usage: "Log into the API server at the specified address; prompted " +
				"for when omitted in an interactive terminal",
		},
		&cli.BoolFlag{
			Name:    flagBrowse,
			Aliases: []string{"b"},
			Usage: "Use the system's default web browser to complete " +
				"authentication",
		},
	},
	Action: login,
}

func login(c *cli.Context) error {
	address := c.String(flagServer)
	browseToAuthURL := c.Bool(flagBrowse)

	if address == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.Errorf("--%s is required", flagServer)
		}
		if err := survey.AskOne(
			&survey.Input{
				Message: "API server address",
			},
			&address,
			survey.WithValidator(survey.Required),
		); err != nil {
			return errors.Wrap(err, "error reading API server address")
		}
	}
	address = strings.TrimSuffix(strings.TrimSpace(address), "/")

	client := api.NewClient(address, "", c.Bool(flagInsecure))

	userSessionAuthDetails, err :=
		client.Sessions().CreateUserSession(c.Context)
	if err != nil {
		return err
	}
	logr.FromContextOrDiscard(c.Context).V(1).Info(
		"created session",
		"server",
		address,
	)

	if err = saveConfig(
		&config{
			APIAddress: address,
			APIToken:   userSessionAuthDetails.Token,
		},
	); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	authURL := userSessionAuthDetails.AuthURL
	if browseToAuthURL {
		if err = openBrowser(authURL); err != nil {
			return errors.Wrapf(
				err,
				"Error opening authentication URL using the system's default web "+
					"browser.\n\nPlease visit  %s  to complete authentication.\n",
				authURL,
			)
		}
		return nil
	}

	fmt.Printf("Please visit  %s  to complete authentication.\n", authURL)

	return nil
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command(
			"rundll32",
			"url.dll,FileProtocolHandler",
			url,
		).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	}
	return errors.New("unsupported OS")
}
