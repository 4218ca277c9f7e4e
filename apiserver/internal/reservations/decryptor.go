package reservations

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"

	"github.com/go-logr/logr"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
)

const (
	aes256KeySize = 32
	gcmTagSize    = 16
)

// Decryptor is the interface for components that turn an Envelope into
// reservations.
type Decryptor interface {
	// Decrypt unwraps the envelope's symmetric key using a KeyStore, opens
	// the payload and parses the resulting reservations. It returns one of
	// *ErrKeyUnavailable, *ErrMalformedEnvelope, *ErrUnwrapFailure,
	// *ErrAuthenticationFailure or *ErrMalformedPayload on failure.
	Decrypt(ctx context.Context, envelope Envelope) ([]sdk.Reservation, error)
}

type decryptor struct {
	keyStore KeyStore
}

// NewDecryptor returns a Decryptor that unwraps envelope keys using the
// provided KeyStore. A nil KeyStore yields a Decryptor that always fails
// with *ErrKeyUnavailable.
func NewDecryptor(keyStore KeyStore) Decryptor {
	return &decryptor{
		keyStore: keyStore,
	}
}

func (d *decryptor) Decrypt(
	ctx context.Context,
	envelope Envelope,
) ([]sdk.Reservation, error) {
	logger := logr.FromContextOrDiscard(ctx)

	if d.keyStore == nil {
		return nil, &ErrKeyUnavailable{Reason: "no key store is configured"}
	}

	handle, err := d.keyStore.GetKey(ctx)
	if err != nil {
		if _, ok := errors.Cause(err).(*ErrKeyUnavailable); ok {
			return nil, err
		}
		return nil, &ErrKeyUnavailable{Reason: err.Error()}
	}
	logger.V(1).Info(
		"resolved envelope key",
		"key",
		handle.Name,
		"version",
		handle.Version,
	)

	decoded, err := envelope.decode()
	if err != nil {
		return nil, err
	}

	key, err := d.keyStore.Decrypt(ctx, handle, decoded.encryptedAESKey)
	if err != nil {
		return nil, &ErrUnwrapFailure{Reason: err.Error()}
	}
	if len(key) != aes256KeySize {
		return nil, &ErrUnwrapFailure{
			Reason: "unwrapped key is not an AES-256 key",
		}
	}

	plaintext, err := openAESGCM(key, decoded)
	if err != nil {
		return nil, err
	}

	return parseReservations(plaintext)
}

// openAESGCM authenticates and decrypts the envelope's payload. Nothing is
// returned unless the tag verifies.
func openAESGCM(key []byte, decoded decodedEnvelope) ([]byte, error) {
	if len(decoded.authTag) != gcmTagSize {
		return nil, &ErrAuthenticationFailure{
			Reason: "authentication tag has the wrong length",
		}
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, &ErrUnwrapFailure{Reason: err.Error()}
	}
	aead, err := cipher.NewGCMWithNonceSize(block, len(decoded.iv))
	if err != nil {
		return nil, &ErrMalformedEnvelope{Reason: err.Error()}
	}
	sealed := make(
		[]byte,
		0,
		len(decoded.encryptedData)+len(decoded.authTag),
	)
	sealed = append(sealed, decoded.encryptedData...)
	sealed = append(sealed, decoded.authTag...)
	plaintext, err := aead.Open(nil, decoded.iv, sealed, nil)
	if err != nil {
		return nil, &ErrAuthenticationFailure{Reason: err.Error()}
	}
	return plaintext, nil
}

func parseReservations(plaintext []byte) ([]sdk.Reservation, error) {
	violations, err := validate(reservationsSchemaLoader, plaintext)
	if err != nil {
		return nil, &ErrMalformedPayload{Reason: "payload is not valid JSON"}
	}
	if len(violations) > 0 {
		return nil, &ErrMalformedPayload{
			Reason:  "payload failed JSON validation",
			Details: violations,
		}
	}
	reservations := []sdk.Reservation{}
	if err = json.Unmarshal(plaintext, &reservations); err != nil {
		return nil, &ErrMalformedPayload{Reason: err.Error()}
	}
	return reservations, nil
}
