package restmachinery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestServeRequest(t *testing.T) {
	testCases := []struct {
		name         string
		logic        func() (interface{}, error)
		expectedCode int
		assertions   func(t *testing.T, body map[string]interface{})
	}{
		{
			name: "success",
			logic: func() (interface{}, error) {
				return map[string]string{"foo": "bar"}, nil
			},
			expectedCode: http.StatusCreated,
			assertions: func(t *testing.T, body map[string]interface{}) {
				require.Equal(t, "bar", body["foo"])
			},
		},
		{
			name: "authentication error",
			logic: func() (interface{}, error) {
				return nil, &sdk.ErrAuthentication{Reason: "no session"}
			},
			expectedCode: http.StatusUnauthorized,
			assertions: func(t *testing.T, body map[string]interface{}) {
				require.Equal(t, "AuthenticationError", body["kind"])
			},
		},
		{
			name: "wrapped authorization error",
			logic: func() (interface{}, error) {
				return nil, errors.Wrap(
					&sdk.ErrAuthorization{Reason: "Forbidden - admin access required"},
					"error listing reservations",
				)
			},
			expectedCode: http.StatusForbidden,
			assertions: func(t *testing.T, body map[string]interface{}) {
				require.Contains(t, body["reason"], "Forbidden")
			},
		},
		{
			name: "bad request",
			logic: func() (interface{}, error) {
				return nil, &sdk.ErrBadRequest{Reason: "nope"}
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			logic: func() (interface{}, error) {
				return nil, &sdk.ErrNotFound{Type: "Session", ID: "foo"}
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "not supported",
			logic: func() (interface{}, error) {
				return nil, &sdk.ErrNotSupported{Details: "nope"}
			},
			expectedCode: http.StatusNotImplemented,
		},
		{
			name: "internal server error with details",
			logic: func() (interface{}, error) {
				return nil, &sdk.ErrInternalServer{
					Message: "Error fetching reservations",
					Details: "boom",
				}
			},
			expectedCode: http.StatusInternalServerError,
			assertions: func(t *testing.T, body map[string]interface{}) {
				require.Equal(t, "Error fetching reservations", body["message"])
				require.Equal(t, "boom", body["error"])
			},
		},
		{
			name: "unrecognized error",
			logic: func() (interface{}, error) {
				return nil, errors.New("something secret")
			},
			expectedCode: http.StatusInternalServerError,
			assertions: func(t *testing.T, body map[string]interface{}) {
				require.NotContains(t, body, "error")
				require.Equal(t, "InternalServerError", body["kind"])
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b := &BaseEndpoints{}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			b.ServeRequest(
				InboundRequest{
					W:             rr,
					R:             req,
					EndpointLogic: testCase.logic,
					SuccessCode:   http.StatusCreated,
				},
			)
			require.Equal(t, testCase.expectedCode, rr.Code)
			require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			if testCase.assertions != nil {
				body := map[string]interface{}{}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				testCase.assertions(t, body)
			}
		})
	}
}

func TestServeHumanRequest(t *testing.T) {
	testCases := []struct {
		name         string
		logic        func() (interface{}, error)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			logic: func() (interface{}, error) {
				return "You're now authenticated.", nil
			},
			expectedCode: http.StatusOK,
			expectedBody: "You're now authenticated.",
		},
		{
			name: "bad request",
			logic: func() (interface{}, error) {
				return nil, &sdk.ErrBadRequest{Reason: "missing state"}
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "missing state",
		},
		{
			name: "unrecognized error",
			logic: func() (interface{}, error) {
				return nil, errors.New("something secret")
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "internal server error",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b := &BaseEndpoints{}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			b.ServeHumanRequest(
				HumanRequest{
					W:             rr,
					R:             req,
					EndpointLogic: testCase.logic,
					SuccessCode:   http.StatusOK,
				},
			)
			require.Equal(t, testCase.expectedCode, rr.Code)
			require.Contains(t, rr.Body.String(), testCase.expectedBody)
			require.NotContains(t, rr.Body.String(), "secret")
		})
	}
}
