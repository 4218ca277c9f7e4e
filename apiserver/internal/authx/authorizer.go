package authx

import (
	"fmt"

	"github.com/krancour/courtside/sdk"
)

// AuthorizeFn is the signature for any function that can, presumably, retrieve
// a session from the provided Context and make an access control decision
// based on it.
type AuthorizeFn func(session *sdk.Session, requiredRole string) error

// Authorize returns nil when the session carries requiredRole. It returns
// *sdk.ErrAuthentication when there is no session at all and
// *sdk.ErrAuthorization when the role is missing. Role names are compared
// case-sensitively.
func Authorize(session *sdk.Session, requiredRole string) error {
	if session == nil {
		return &sdk.ErrAuthentication{
			Reason: "No valid session was found. Please log in.",
		}
	}
	if !session.HasRole(requiredRole) {
		return &sdk.ErrAuthorization{
			Reason: fmt.Sprintf("Forbidden - %s access required", requiredRole),
		}
	}
	return nil
}
