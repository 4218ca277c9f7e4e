package main

import (
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/krancour/courtside/sdk"
	"github.com/stretchr/testify/require"
)

func TestParseReservationState(t *testing.T) {
	state, err := parseReservationState("")
	require.NoError(t, err)
	require.Empty(t, state)

	state, err = parseReservationState("accepted")
	require.NoError(t, err)
	require.Equal(t, sdk.ReservationStateAccepted, state)

	state, err = parseReservationState("REJECTED")
	require.NoError(t, err)
	require.Equal(t, sdk.ReservationStateRejected, state)

	_, err = parseReservationState("cancelled")
	require.Error(t, err)
}

func TestFilterReservations(t *testing.T) {
	reservations := []sdk.Reservation{
		{ID: "r1", State: sdk.ReservationStateAccepted},
		{ID: "r2", State: sdk.ReservationStatePending},
		{ID: "r3", State: sdk.ReservationStateAccepted},
	}
	require.Equal(t, reservations, filterReservations(reservations, ""))
	filtered := filterReservations(reservations, sdk.ReservationStateAccepted)
	require.Len(t, filtered, 2)
	require.Equal(t, "r1", filtered[0].ID)
	require.Equal(t, "r3", filtered[1].ID)
	filtered = filterReservations(reservations, sdk.ReservationStateRejected)
	require.NotNil(t, filtered)
	require.Empty(t, filtered)
}

func TestReservationsTable(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() {
		color.NoColor = noColor
	}()
	date := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	table := reservationsTable([]sdk.Reservation{
		{
			ID:         "r1",
			Email:      "tony@starkindustries.com",
			Date:       sdk.NewTimestamp(date),
			FacilityID: "c7",
			State:      sdk.ReservationStateRejected,
		},
	})
	out := table.String()
	require.Contains(t, out, "FACILITY")
	require.Contains(t, out, "r1")
	require.Contains(t, out, "c7")
	require.Contains(t, out, "REJECTED")
	require.Contains(t, out, date.Local().Format("2006-01-02 15:04"))
}

func TestStateColor(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() {
		color.NoColor = noColor
	}()
	require.Equal(
		t,
		color.New(color.FgGreen).Sprint("x"),
		stateColor(sdk.ReservationStateAccepted).Sprint("x"),
	)
	require.Equal(
		t,
		color.New(color.FgYellow).Sprint("x"),
		stateColor(sdk.ReservationStatePending).Sprint("x"),
	)
	require.Equal(
		t,
		color.New(color.FgRed).Sprint("x"),
		stateColor(sdk.ReservationStateRejected).Sprint("x"),
	)
	require.NotEqual(
		t,
		stateColor(sdk.ReservationStateAccepted).Sprint("x"),
		stateColor(sdk.ReservationStateRejected).Sprint("x"),
	)
}
