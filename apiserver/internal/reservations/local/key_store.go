package local

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" // nolint: gosec
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"hash"
	"os"

	libcrypto "github.com/krancour/courtside/apiserver/internal/lib/crypto"
	"github.com/krancour/courtside/apiserver/internal/reservations"
	"github.com/pkg/errors"
)

const keyName = "local"

type keyStore struct {
	privateKey *rsa.PrivateKey
	newHash    func() hash.Hash
	version    string
}

// NewKeyStoreFromFile returns a reservations.KeyStore backed by the RSA
// private key in the PEM file at path. It serves development and test
// environments without access to Azure Key Vault.
func NewKeyStoreFromFile(
	path string,
	algorithm string,
) (reservations.KeyStore, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading private key from %s", path)
	}
	return NewKeyStore(pemBytes, algorithm)
}

// NewKeyStore returns a reservations.KeyStore backed by the PEM encoded RSA
// private key. algorithm is either RSA-OAEP (SHA-1) or RSA-OAEP-256.
func NewKeyStore(
	pemBytes []byte,
	algorithm string,
) (reservations.KeyStore, error) {
	var newHash func() hash.Hash
	switch algorithm {
	case "", "RSA-OAEP":
		newHash = sha1.New
	case "RSA-OAEP-256":
		newHash = sha256.New
	default:
		return nil, errors.Errorf("unsupported key unwrap algorithm %q", algorithm)
	}
	privateKey, err := parsePrivateKey(pemBytes)
	if err != nil {
		return nil, err
	}
	pubBytes, err := x509.MarshalPKIXPublicKey(privateKey.Public())
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling public key")
	}
	return &keyStore{
		privateKey: privateKey,
		newHash:    newHash,
		version:    libcrypto.ShortSHA("", string(pubBytes)),
	}, nil
}

func parsePrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("no PEM data found")
	}
	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		return key, errors.Wrap(err, "error parsing PKCS #1 private key")
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, errors.Wrap(err, "error parsing PKCS #8 private key")
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("private key is not an RSA key")
		}
		return rsaKey, nil
	}
	return nil, errors.Errorf("unsupported PEM block type %q", block.Type)
}

func (k *keyStore) GetKey(context.Context) (reservations.KeyHandle, error) {
	return reservations.KeyHandle{
		Name:    keyName,
		Version: k.version,
	}, nil
}

func (k *keyStore) Decrypt(
	_ context.Context,
	handle reservations.KeyHandle,
	ciphertext []byte,
) ([]byte, error) {
	if handle.Name != keyName || handle.Version != k.version {
		return nil, errors.Errorf(
			"key %s/%s is not held by this key store",
			handle.Name,
			handle.Version,
		)
	}
	return rsa.DecryptOAEP(k.newHash(), rand.Reader, k.privateKey, ciphertext, nil)
}
