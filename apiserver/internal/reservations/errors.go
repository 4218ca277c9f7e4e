package reservations

import (
	"fmt"
	"strings"
)

// ErrKeyUnavailable represents a failure to resolve the key used to unwrap
// an envelope's symmetric key. Either the key store is not configured or the
// key could not be retrieved.
type ErrKeyUnavailable struct {
	Reason string
}

func (e *ErrKeyUnavailable) Error() string {
	return fmt.Sprintf("key unavailable: %s", e.Reason)
}

// ErrUnwrapFailure represents a failure to decrypt an envelope's wrapped
// symmetric key.
type ErrUnwrapFailure struct {
	Reason string
}

func (e *ErrUnwrapFailure) Error() string {
	return fmt.Sprintf("error unwrapping symmetric key: %s", e.Reason)
}

// ErrAuthenticationFailure represents a payload whose authentication tag did
// not verify. No plaintext is ever returned alongside it.
type ErrAuthenticationFailure struct {
	Reason string
}

func (e *ErrAuthenticationFailure) Error() string {
	return fmt.Sprintf("payload authentication failed: %s", e.Reason)
}

// ErrMalformedPayload represents plaintext that decrypted successfully but is
// not a valid sequence of reservation records.
type ErrMalformedPayload struct {
	Reason  string
	Details []string
}

func (e *ErrMalformedPayload) Error() string {
	return withDetails(
		fmt.Sprintf("malformed reservations payload: %s", e.Reason),
		e.Details,
	)
}

// ErrMalformedEnvelope represents an envelope that is missing fields or
// whose fields are not valid base64.
type ErrMalformedEnvelope struct {
	Reason  string
	Details []string
}

func (e *ErrMalformedEnvelope) Error() string {
	return withDetails(
		fmt.Sprintf("malformed envelope: %s", e.Reason),
		e.Details,
	)
}

// ErrUpstreamUnavailable represents a failed call to the upstream
// reservations service. StatusCode is zero when no response was received.
type ErrUpstreamUnavailable struct {
	Reason     string
	StatusCode int
}

func (e *ErrUpstreamUnavailable) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("Failed to fetch reservations: %s", e.Reason)
	}
	return fmt.Sprintf(
		"Failed to fetch reservations: upstream responded with status %d",
		e.StatusCode,
	)
}

func withDetails(msg string, details []string) string {
	if len(details) == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %s", msg, strings.Join(details, "; "))
}
