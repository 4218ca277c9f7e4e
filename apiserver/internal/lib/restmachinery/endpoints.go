package restmachinery

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/gorilla/mux"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
)

// Endpoints is an interface to be implemented by all REST API endpoints.
type Endpoints interface {
	// Register is invoked to register an Endpoint's handler functions with a
	// router.
	Register(router *mux.Router)
}

// BaseEndpoints implements functionality common to all REST API endpoints.
type BaseEndpoints struct {
	// SessionFilter resolves the caller's session, if any, and adds it to the
	// request context.
	SessionFilter Filter
}

// ServeRequest handles an inbound request and writes a JSON response. Errors
// returned from the request's EndpointLogic are mapped to an appropriate
// status code.
func (b *BaseEndpoints) ServeRequest(req InboundRequest) {
	logger := logr.FromContextOrDiscard(req.R.Context())
	respBodyObj, err := req.EndpointLogic()
	if err != nil {
		switch e := errors.Cause(err).(type) {
		case *sdk.ErrAuthentication:
			b.WriteAPIResponse(req.W, http.StatusUnauthorized, e)
		case *sdk.ErrAuthorization:
			b.WriteAPIResponse(req.W, http.StatusForbidden, e)
		case *sdk.ErrBadRequest:
			b.WriteAPIResponse(req.W, http.StatusBadRequest, e)
		case *sdk.ErrNotFound:
			b.WriteAPIResponse(req.W, http.StatusNotFound, e)
		case *sdk.ErrMethodNotAllowed:
			b.WriteAPIResponse(req.W, http.StatusMethodNotAllowed, e)
		case *sdk.ErrNotSupported:
			b.WriteAPIResponse(req.W, http.StatusNotImplemented, e)
		case *sdk.ErrInternalServer:
			logger.Error(err, "error serving request", "path", req.R.URL.Path)
			b.WriteAPIResponse(req.W, http.StatusInternalServerError, e)
		default:
			logger.Error(err, "error serving request", "path", req.R.URL.Path)
			b.WriteAPIResponse(
				req.W,
				http.StatusInternalServerError,
				&sdk.ErrInternalServer{},
			)
		}
		return
	}
	b.WriteAPIResponse(req.W, req.SuccessCode, respBodyObj)
}

// WriteAPIResponse marshals the response to JSON, unless it is already a
// byte slice, and writes it with the specified status code.
func (b *BaseEndpoints) WriteAPIResponse(
	w http.ResponseWriter,
	statusCode int,
	response interface{},
) {
	responseBody, ok := response.([]byte)
	if !ok {
		var err error
		if responseBody, err = json.Marshal(response); err != nil {
			statusCode = http.StatusInternalServerError
			// ErrInternalServer always marshals
			responseBody, _ = json.Marshal(&sdk.ErrInternalServer{})
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(responseBody) // nolint: errcheck
}

// ServeHumanRequest handles an inbound request made by a human using a web
// browser. Responses are plain text.
func (b *BaseEndpoints) ServeHumanRequest(humanReq HumanRequest) {
	respBodyObj, err := humanReq.EndpointLogic()
	if err != nil {
		switch e := errors.Cause(err).(type) {
		case *sdk.ErrAuthentication:
			http.Error(humanReq.W, e.Error(), http.StatusUnauthorized)
		case *sdk.ErrAuthorization:
			http.Error(humanReq.W, e.Error(), http.StatusForbidden)
		case *sdk.ErrBadRequest:
			http.Error(humanReq.W, e.Error(), http.StatusBadRequest)
		case *sdk.ErrNotFound:
			http.Error(humanReq.W, e.Error(), http.StatusNotFound)
		case *sdk.ErrNotSupported:
			http.Error(humanReq.W, e.Error(), http.StatusNotImplemented)
		default:
			logr.FromContextOrDiscard(humanReq.R.Context()).Error(
				err,
				"error serving request",
				"path",
				humanReq.R.URL.Path,
			)
			http.Error(
				humanReq.W,
				(&sdk.ErrInternalServer{}).Error(),
				http.StatusInternalServerError,
			)
		}
		return
	}
	humanReq.W.Header().Set("Content-Type", "text/plain; charset=utf-8")
	humanReq.W.WriteHeader(humanReq.SuccessCode)
	var responseBody []byte
	switch r := respBodyObj.(type) {
	case []byte:
		responseBody = r
	case string:
		responseBody = []byte(r)
	case fmt.Stringer:
		responseBody = []byte(r.String())
	}
	humanReq.W.Write(responseBody) // nolint: errcheck
}
