package reservations

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" // nolint: gosec
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPayload = `[{"_id":"r1","email":"tony@starkindustries.com",` +
	`"date":"2025-03-01T18:00:00.000Z","cancha_id":"c7","state":"ACCEPTED",` +
	`"createdAt":"2025-02-20T12:00:00.000Z",` +
	`"updatedAt":"2025-02-21T09:30:00.000Z","__v":0}]`

// testKeyStore holds an RSA private key in memory and unwraps with
// RSA-OAEP/SHA-1, like the vault's RSA-OAEP algorithm.
type testKeyStore struct {
	privateKey *rsa.PrivateKey
	getKeyErr  error
	decryptErr error
}

func (t *testKeyStore) GetKey(context.Context) (KeyHandle, error) {
	return KeyHandle{Name: "test", Version: "v1"}, t.getKeyErr
}

func (t *testKeyStore) Decrypt(
	_ context.Context,
	_ KeyHandle,
	ciphertext []byte,
) ([]byte, error) {
	if t.decryptErr != nil {
		return nil, t.decryptErr
	}
	return rsa.DecryptOAEP(sha1.New(), rand.Reader, t.privateKey, ciphertext, nil)
}

func newTestRSAKey(t *testing.T) *rsa.PrivateKey {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func randomBytes(t *testing.T, n int) []byte {
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

// sealTestEnvelope encrypts plaintext under aesKey and wraps aesKey for
// publicKey, producing an envelope the way the upstream service does.
func sealTestEnvelope(
	t *testing.T,
	publicKey *rsa.PublicKey,
	aesKey []byte,
	plaintext []byte,
) Envelope {
	block, err := aes.NewCipher(aesKey)
	require.NoError(t, err)
	aead, err := cipher.NewGCM(block)
	require.NoError(t, err)
	iv := randomBytes(t, aead.NonceSize())
	sealed := aead.Seal(nil, iv, plaintext, nil)
	tagStart := len(sealed) - aead.Overhead()
	wrappedKey, err :=
		rsa.EncryptOAEP(sha1.New(), rand.Reader, publicKey, aesKey, nil)
	require.NoError(t, err)
	return Envelope{
		EncryptedData:   base64.StdEncoding.EncodeToString(sealed[:tagStart]),
		EncryptedAESKey: base64.StdEncoding.EncodeToString(wrappedKey),
		IV:              base64.StdEncoding.EncodeToString(iv),
		AuthTag:         base64.StdEncoding.EncodeToString(sealed[tagStart:]),
	}
}

// flipBit returns a copy of the base64 encoded value with one bit of the
// decoded bytes flipped.
func flipBit(t *testing.T, value string, index int) string {
	decoded, err := base64.StdEncoding.DecodeString(value)
	require.NoError(t, err)
	decoded[index%len(decoded)] ^= 0x01
	return base64.StdEncoding.EncodeToString(decoded)
}
