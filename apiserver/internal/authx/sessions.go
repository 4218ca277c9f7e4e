package authx

import (
	"time"

	"github.com/krancour/courtside/apiserver/internal/lib/crypto"
	"github.com/krancour/courtside/sdk"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/oauth2"
)

// Session is the server-side record of a user's sign-in. It is never
// returned to clients directly. See ProjectSession.
type Session struct {
	ID                string     `json:"id" bson:"id"`
	HashedOAuth2State string     `json:"hashedOAuth2State,omitempty" bson:"hashedOAuth2State,omitempty"` // nolint: lll
	Provider          string     `json:"provider,omitempty" bson:"provider,omitempty"`
	AccessToken       string     `json:"accessToken,omitempty" bson:"accessToken,omitempty"`
	IDToken           string     `json:"idToken,omitempty" bson:"idToken,omitempty"`
	RefreshToken      string     `json:"refreshToken,omitempty" bson:"refreshToken,omitempty"` // nolint: lll
	AccessTokenExpiry *time.Time `json:"accessTokenExpiry,omitempty" bson:"accessTokenExpiry,omitempty"` // nolint: lll
	Roles             []string   `json:"roles" bson:"roles"`
	Name              string     `json:"name,omitempty" bson:"name,omitempty"`
	Email             string     `json:"email,omitempty" bson:"email,omitempty"`
	Image             string     `json:"image,omitempty" bson:"image,omitempty"`
	Created           *time.Time `json:"created,omitempty" bson:"created,omitempty"`
	Authenticated     *time.Time `json:"authenticated,omitempty" bson:"authenticated,omitempty"` // nolint: lll
	Expires           *time.Time `json:"expires,omitempty" bson:"expires,omitempty"`
}

// NewUserSession returns a new, unauthenticated Session awaiting completion
// of the OpenID Connect flow identified by oauth2State.
func NewUserSession(oauth2State string) Session {
	return Session{
		ID:                uuid.NewV4().String(),
		HashedOAuth2State: crypto.ShortSHA("", oauth2State),
		Roles:             []string{},
	}
}

// Grant is a set of credentials issued by the identity provider, either upon
// sign-in or upon refresh.
type Grant struct {
	Provider     string
	AccessToken  string
	IDToken      string
	RefreshToken string
	Expiry       time.Time
}

// GrantFromOAuth2Token extracts a Grant from an OAuth2 token response.
func GrantFromOAuth2Token(provider string, token *oauth2.Token) *Grant {
	grant := &Grant{
		Provider:     provider,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
	if idToken, ok := token.Extra("id_token").(string); ok {
		grant.IDToken = idToken
	}
	return grant
}

// EnrichToken attaches the provider issued credentials in grant, along with
// the roles decoded from its access token, to the session. When grant is nil
// (a session read with no new credentials) the session is returned
// unchanged. A refresh that omits an ID token or refresh token keeps the
// ones already held.
func EnrichToken(session Session, grant *Grant) Session {
	if grant == nil {
		return session
	}
	session.Provider = grant.Provider
	session.AccessToken = grant.AccessToken
	if grant.IDToken != "" {
		session.IDToken = grant.IDToken
	}
	if grant.RefreshToken != "" {
		session.RefreshToken = grant.RefreshToken
	}
	if grant.Expiry.IsZero() {
		session.AccessTokenExpiry = nil
	} else {
		expiry := grant.Expiry
		session.AccessTokenExpiry = &expiry
	}
	session.Roles = RolesFromAccessToken(grant.AccessToken)
	return session
}

// ProjectSession derives the client-visible session object from the
// server-side session. The result always carries a roles field.
func ProjectSession(session Session) sdk.Session {
	roles := session.Roles
	if roles == nil {
		roles = []string{}
	}
	return sdk.Session{
		AccessToken: session.AccessToken,
		Roles:       roles,
		User: sdk.User{
			Name:  session.Name,
			Email: session.Email,
			Image: session.Image,
		},
		Expires: session.Expires,
	}
}
