package reservations

import "context"

// KeyHandle identifies a specific version of an asymmetric key held by a
// KeyStore.
type KeyHandle struct {
	Name    string
	Version string
}

// KeyStore is the interface for components that hold the private half of the
// key pair used to wrap envelope keys. Implementations never expose the
// private key itself.
type KeyStore interface {
	// GetKey resolves the configured key. Implementations return
	// *ErrKeyUnavailable when they are not configured or the key cannot be
	// retrieved.
	GetKey(ctx context.Context) (KeyHandle, error)
	// Decrypt decrypts ciphertext with the private key identified by handle
	// using RSA-OAEP.
	Decrypt(ctx context.Context, handle KeyHandle, ciphertext []byte) ([]byte, error)
}
