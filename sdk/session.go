package sdk

import (
	"encoding/json"
	"time"

	"github.com/krancour/courtside/sdk/meta"
)

// User holds the profile fields supplied by the identity provider.
type User struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
}

// Session is the client-visible projection of a server-side session. It is
// derived anew on every read and never stored on its own.
type Session struct {
	AccessToken string     `json:"accessToken,omitempty"`
	Roles       []string   `json:"roles"`
	User        User       `json:"user"`
	Expires     *time.Time `json:"expires,omitempty"`
}

// HasRole returns true if the session's role set includes the specified role.
func (s Session) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// MarshalJSON amends Session instances with type metadata and guarantees the
// roles field is never null.
func (s Session) MarshalJSON() ([]byte, error) {
	if s.Roles == nil {
		s.Roles = []string{}
	}
	type Alias Session
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "Session",
			},
			Alias: (Alias)(s),
		},
	)
}

// UserSessionAuthDetails is returned when a new user session is created. The
// user completes authentication by visiting AuthURL. Token is the bearer
// token that identifies the session from then on.
type UserSessionAuthDetails struct {
	AuthURL string `json:"authURL"`
	Token   string `json:"token"`
}

// MarshalJSON amends UserSessionAuthDetails instances with type metadata.
func (u UserSessionAuthDetails) MarshalJSON() ([]byte, error) {
	type Alias UserSessionAuthDetails
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "UserSessionAuthDetails",
			},
			Alias: (Alias)(u),
		},
	)
}
