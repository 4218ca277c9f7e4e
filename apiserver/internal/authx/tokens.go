package authx

import (
	"encoding/json"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// accessTokenClaims captures the parts of a Keycloak access token that
// courtside cares about.
type accessTokenClaims struct {
	RealmAccess *struct {
		Roles []string `json:"roles"`
	} `json:"realm_access,omitempty"`
}

// RolesFromAccessToken returns the realm-level roles carried by the specified
// access token. Only the payload segment is decoded. Neither the header nor
// the signature is examined, since the provider is trusted to have issued a
// well-formed token. Any failure to decode the payload, or a token without a
// realm_access.roles claim, yields an empty, non-nil role set.
func RolesFromAccessToken(accessToken string) []string {
	segments := strings.Split(accessToken, ".")
	if len(segments) != 3 {
		return []string{}
	}
	payload, err :=
		jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(segments[1])
	if err != nil {
		return []string{}
	}
	claims := accessTokenClaims{}
	if err = json.Unmarshal(payload, &claims); err != nil {
		return []string{}
	}
	if claims.RealmAccess == nil || claims.RealmAccess.Roles == nil {
		return []string{}
	}
	return claims.RealmAccess.Roles
}
