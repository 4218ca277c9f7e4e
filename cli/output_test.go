package main

import (
	"testing"

	"github.com/krancour/courtside/sdk"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"table", "TABLE", "yaml", "json"} {
		require.NoError(t, validateOutputFormat(format))
	}
	require.Error(t, validateOutputFormat("xml"))
}

func TestFormatStructured(t *testing.T) {
	list := sdk.ReservationList{
		Reservations: []sdk.Reservation{
			{
				ID:    "r1",
				State: sdk.ReservationStatePending,
			},
		},
	}
	out, err := formatStructured("json", list)
	require.NoError(t, err)
	require.Contains(t, out, `"kind": "ReservationList"`)
	require.Contains(t, out, `"id": "r1"`)

	out, err = formatStructured("yaml", list)
	require.NoError(t, err)
	require.Contains(t, out, "kind: ReservationList")
	require.Contains(t, out, "state: PENDING")

	_, err = formatStructured("table", list)
	require.Error(t, err)
}
