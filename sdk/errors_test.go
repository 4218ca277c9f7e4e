package sdk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testType        = "Session"
	testSessionID   = "0d0c7a6e-2b1f-4bd1-9d4b-3c2f1d6a9e55"
	testErrorReason = "i don't have to answer to you"
)

var testErrorDetails = []string{"the", "devil", "is", "in", "the", "details"}

func TestErrAuthentication(t *testing.T) {
	err := &ErrAuthentication{
		Reason: testErrorReason,
	}
	require.Contains(t, err.Error(), testErrorReason)
	requireAPIVersionAndType(t, err, "AuthenticationError")
}

func TestErrAuthorization(t *testing.T) {
	testCases := []struct {
		name       string
		err        *ErrAuthorization
		assertions func(t *testing.T, err *ErrAuthorization)
	}{
		{
			name: "without reason",
			err:  &ErrAuthorization{},
			assertions: func(t *testing.T, err *ErrAuthorization) {
				require.Equal(t, "The request is not authorized.", err.Error())
			},
		},
		{
			name: "with reason",
			err: &ErrAuthorization{
				Reason: "Forbidden - admin access required",
			},
			assertions: func(t *testing.T, err *ErrAuthorization) {
				require.Contains(t, err.Error(), "not authorized")
				require.Contains(t, err.Error(), "Forbidden")
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.assertions(t, testCase.err)
			requireAPIVersionAndType(t, testCase.err, "AuthorizationError")
		})
	}
}

func TestErrBadRequest(t *testing.T) {
	testCases := []struct {
		name       string
		err        *ErrBadRequest
		assertions func(t *testing.T, err *ErrBadRequest)
	}{
		{
			name: "without details",
			err: &ErrBadRequest{
				Reason: testErrorReason,
			},
			assertions: func(t *testing.T, err *ErrBadRequest) {
				require.Contains(t, err.Error(), testErrorReason)
				require.NotContains(t, err.Error(), "devil")
			},
		},
		{
			name: "with details",
			err: &ErrBadRequest{
				Reason:  testErrorReason,
				Details: testErrorDetails,
			},
			assertions: func(t *testing.T, err *ErrBadRequest) {
				require.Contains(t, err.Error(), testErrorReason)
				for _, detail := range err.Details {
					require.Contains(t, err.Error(), detail)
				}
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.assertions(t, testCase.err)
		})
	}
}

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{
		Type: testType,
		ID:   testSessionID,
	}
	require.Contains(t, err.Error(), testType)
	require.Contains(t, err.Error(), testSessionID)
	requireAPIVersionAndType(t, err, "NotFoundError")
}

func TestErrMethodNotAllowed(t *testing.T) {
	err := &ErrMethodNotAllowed{Message: "Method not allowed"}
	require.Equal(t, "Method not allowed", err.Error())
	errJSON, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	require.Contains(t, string(errJSON), `"message":"Method not allowed"`)
}

func TestErrInternalServer(t *testing.T) {
	testCases := []struct {
		name       string
		err        *ErrInternalServer
		assertions func(t *testing.T, err *ErrInternalServer, errJSON []byte)
	}{
		{
			name: "nothing disclosed",
			err:  &ErrInternalServer{},
			assertions: func(
				t *testing.T,
				err *ErrInternalServer,
				errJSON []byte,
			) {
				require.Contains(t, err.Error(), "internal server error")
				require.NotContains(t, string(errJSON), `"message"`)
				require.NotContains(t, string(errJSON), `"error"`)
			},
		},
		{
			name: "message and details",
			err: &ErrInternalServer{
				Message: "Error fetching reservations",
				Details: "upstream unavailable",
			},
			assertions: func(
				t *testing.T,
				err *ErrInternalServer,
				errJSON []byte,
			) {
				require.Equal(
					t,
					"Error fetching reservations: upstream unavailable",
					err.Error(),
				)
				require.Contains(
					t,
					string(errJSON),
					`"message":"Error fetching reservations"`,
				)
				require.Contains(t, string(errJSON), `"error":"upstream unavailable"`)
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			errJSON, err := json.Marshal(testCase.err)
			require.NoError(t, err)
			testCase.assertions(t, testCase.err, errJSON)
			requireAPIVersionAndType(t, testCase.err, "InternalServerError")
		})
	}
}

func TestErrNotSupported(t *testing.T) {
	err := &ErrNotSupported{
		Details: testErrorReason,
	}
	require.Equal(t, testErrorReason, err.Error())
}
