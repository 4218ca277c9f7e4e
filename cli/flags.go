package main

import "github.com/urfave/cli/v2"

const (
	flagBrowse   = "browse"
	flagInsecure = "insecure"
	flagOutput   = "output"
	flagServer   = "server"
	flagState    = "state"
	flagVerbose  = "verbose"
)

var (
	cliFlagOutput = &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage: "Return output in the specified format; supported formats: table, " +
			"yaml, json",
		Value: "table",
	}
)
