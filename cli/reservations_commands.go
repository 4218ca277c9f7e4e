package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var reservationsCommand = &cli.Command{
	Name:    "reservations",
	Usage:   "Review court reservations",
	Aliases: []string{"reservation", "res"},
	Subcommands: []*cli.Command{
		{
			Name:        "list",
			Aliases:     []string{"ls"},
			Usage:       "List reservations",
			Description: "Requires a session with the administrator role",
			Flags: []cli.Flag{
				cliFlagOutput,
				&cli.StringFlag{
					Name: flagState,
					Usage: "Only list reservations in the specified state; one of " +
						"ACCEPTED, PENDING or REJECTED",
				},
			},
			Action: reservationsList,
		},
	},
}

func reservationsList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}
	state, err := parseReservationState(c.String(flagState))
	if err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting courtside client")
	}

	list, err := client.Reservations().List(c.Context)
	if err != nil {
		return err
	}
	list.Reservations = filterReservations(list.Reservations, state)

	if strings.ToLower(output) != outputFormatTable {
		return printStructured(output, list)
	}

	if len(list.Reservations) == 0 {
		fmt.Println("No reservations found.")
		return nil
	}

	color.NoColor = color.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Println(reservationsTable(list.Reservations))
	return nil
}

func parseReservationState(state string) (sdk.ReservationState, error) {
	if state == "" {
		return "", nil
	}
	switch s := sdk.ReservationState(strings.ToUpper(state)); s {
	case sdk.ReservationStateAccepted,
		sdk.ReservationStatePending,
		sdk.ReservationStateRejected:
		return s, nil
	}
	return "", errors.Errorf("unknown reservation state %q", state)
}

// filterReservations returns the reservations in the specified state, or all
// of them when state is empty.
func filterReservations(
	reservations []sdk.Reservation,
	state sdk.ReservationState,
) []sdk.Reservation {
	if state == "" {
		return reservations
	}
	filtered := []sdk.Reservation{}
	for _, reservation := range reservations {
		if reservation.State == state {
			filtered = append(filtered, reservation)
		}
	}
	return filtered
}

func reservationsTable(reservations []sdk.Reservation) *uitable.Table {
	table := uitable.New()
	table.AddRow("ID", "EMAIL", "DATE", "FACILITY", "STATE", "CREATED")
	for _, reservation := range reservations {
		table.AddRow(
			reservation.ID,
			reservation.Email,
			formatTime(reservation.Date),
			reservation.FacilityID,
			stateColor(reservation.State).Sprint(reservation.State),
			formatTime(reservation.CreatedAt),
		)
	}
	return table
}

func stateColor(state sdk.ReservationState) *color.Color {
	switch state {
	case sdk.ReservationStateAccepted:
		return color.New(color.FgGreen)
	case sdk.ReservationStatePending:
		return color.New(color.FgYellow)
	case sdk.ReservationStateRejected:
		return color.New(color.FgRed)
	}
	return color.New(color.Reset)
}

func formatTime(t *sdk.Timestamp) string {
	if t == nil {
		return ""
	}
	if !t.Parsed() {
		return t.Raw
	}
	return t.Time.Local().Format("2006-01-02 15:04")
}
