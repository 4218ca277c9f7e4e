package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosuri/uitable"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var sessionCommand = &cli.Command{
	Name:  "session",
	Usage: "Show the current session",
	Flags: []cli.Flag{
		cliFlagOutput,
	},
	Action: showSession,
}

func showSession(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting courtside client")
	}

	session, err := client.Sessions().Get(c.Context)
	if err != nil {
		return err
	}

	if strings.ToLower(output) != outputFormatTable {
		return printStructured(output, session)
	}
	fmt.Println(sessionTable(session))
	return nil
}

func sessionTable(session sdk.Session) *uitable.Table {
	table := uitable.New()
	table.Wrap = true
	table.AddRow("NAME:", session.User.Name)
	table.AddRow("EMAIL:", session.User.Email)
	roles := "<none>"
	if len(session.Roles) > 0 {
		roles = strings.Join(session.Roles, ", ")
	}
	table.AddRow("ROLES:", roles)
	if session.Expires != nil {
		table.AddRow("EXPIRES:", session.Expires.Local().Format(time.RFC1123))
	}
	return table
}
