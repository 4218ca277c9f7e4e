package restmachinery

import "net/http"

// Filter is an interface to be implemented by components that can decorate
// an http.HandlerFunc.
type Filter interface {
	// Decorate decorates one http.HandlerFunc with another.
	Decorate(http.HandlerFunc) http.HandlerFunc
}
