package sdk

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name       string
		json       string
		assertions func(t *testing.T, timestamp Timestamp, err error)
	}{
		{
			name: "RFC 3339",
			json: `"2025-03-01T18:00:00.000Z"`,
			assertions: func(t *testing.T, timestamp Timestamp, err error) {
				require.NoError(t, err)
				require.True(t, timestamp.Parsed())
				require.Equal(
					t,
					time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC),
					timestamp.Time,
				)
			},
		},
		{
			name: "date only",
			json: `"2025-03-01"`,
			assertions: func(t *testing.T, timestamp Timestamp, err error) {
				require.NoError(t, err)
				require.True(t, timestamp.Parsed())
				require.Equal(t, 2025, timestamp.Time.Year())
				require.Equal(t, time.March, timestamp.Time.Month())
				require.Equal(t, 1, timestamp.Time.Day())
			},
		},
		{
			name: "unrecognized layout",
			json: `"next tuesday"`,
			assertions: func(t *testing.T, timestamp Timestamp, err error) {
				require.NoError(t, err)
				require.False(t, timestamp.Parsed())
				require.Equal(t, "next tuesday", timestamp.Raw)
			},
		},
		{
			name: "not a string",
			json: `42`,
			assertions: func(t *testing.T, _ Timestamp, err error) {
				require.Error(t, err)
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			timestamp := Timestamp{}
			err := json.Unmarshal([]byte(testCase.json), &timestamp)
			testCase.assertions(t, timestamp, err)
		})
	}
}

func TestTimestampMarshalJSON(t *testing.T) {
	// Values read from upstream are written back verbatim
	timestamp := Timestamp{}
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-01"`), &timestamp))
	timestampJSON, err := json.Marshal(timestamp)
	require.NoError(t, err)
	require.Equal(t, `"2025-03-01"`, string(timestampJSON))

	timestampJSON, err = json.Marshal(
		NewTimestamp(time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)),
	)
	require.NoError(t, err)
	require.Equal(t, `"2025-03-01T18:00:00Z"`, string(timestampJSON))
}

func TestReservationWithNullTimestamps(t *testing.T) {
	reservation := Reservation{}
	err := json.Unmarshal(
		[]byte(`{"_id":"r1","date":"2025-03-01","createdAt":null,"state":"ACCEPTED"}`),
		&reservation,
	)
	require.NoError(t, err)
	require.NotNil(t, reservation.Date)
	require.True(t, reservation.Date.Parsed())
	require.Nil(t, reservation.CreatedAt)
}
