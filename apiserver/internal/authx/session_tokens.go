package authx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const sessionTokenIssuer = "courtside"

// signSessionToken returns an HS256 signed token identifying the specified
// session. The token is what clients present, as a bearer token or cookie,
// on every subsequent request.
func signSessionToken(
	secret []byte,
	sessionID string,
	issued time.Time,
	expires time.Time,
) (string, error) {
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    sessionTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "error signing session token")
	}
	return signed, nil
}

// parseSessionToken verifies the signature and expiry of a session token and
// returns the ID of the session it identifies.
func parseSessionToken(secret []byte, tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(*jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionTokenIssuer),
		jwt.WithExpirationRequired(),
	); err != nil {
		return "", errors.Wrap(err, "error parsing session token")
	}
	if claims.ID == "" {
		return "", errors.New("session token does not identify a session")
	}
	return claims.ID, nil
}
