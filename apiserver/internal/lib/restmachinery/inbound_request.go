package restmachinery

import "net/http"

// InboundRequest represents an inbound REST API request.
type InboundRequest struct {
	// W is the http.ResponseWriter the response will be written to.
	W http.ResponseWriter
	// R is the original request.
	R *http.Request
	// EndpointLogic implements the endpoint. The first return value is
	// marshaled to JSON and written to the response upon success.
	EndpointLogic func() (interface{}, error)
	// SuccessCode is the status code written when EndpointLogic does not
	// return an error.
	SuccessCode int
}

// HumanRequest represents an inbound request made directly by a human
// through a web browser.
type HumanRequest struct {
	W             http.ResponseWriter
	R             *http.Request
	EndpointLogic func() (interface{}, error)
	SuccessCode   int
}
