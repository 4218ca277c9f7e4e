package keyvault

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azkeys"
	"github.com/krancour/courtside/apiserver/internal/reservations"
	"github.com/pkg/errors"
)

// keysClient is the subset of *azkeys.Client used by the key store.
type keysClient interface {
	GetKey(
		ctx context.Context,
		name string,
		version string,
		options *azkeys.GetKeyOptions,
	) (azkeys.GetKeyResponse, error)
	Decrypt(
		ctx context.Context,
		name string,
		version string,
		parameters azkeys.KeyOperationParameters,
		options *azkeys.DecryptOptions,
	) (azkeys.DecryptResponse, error)
}

type keyStore struct {
	client    keysClient
	keyName   string
	algorithm azkeys.EncryptionAlgorithm
	timeout   time.Duration
	// unavailable is non-empty when the store is not configured.
	unavailable string
}

// NewKeyStore returns a reservations.KeyStore backed by an Azure Key Vault
// key. Credentials are resolved through azidentity's default credential
// chain. If the vault URL or key name is not configured, the returned store
// fails every operation with *reservations.ErrKeyUnavailable.
func NewKeyStore(config Config) (reservations.KeyStore, error) {
	if config.URL == "" || config.KeyName == "" {
		return &keyStore{
			unavailable: "Azure Key Vault configuration missing",
		}, nil
	}
	algorithm, err := encryptionAlgorithm(config.Algorithm)
	if err != nil {
		return nil, err
	}
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, errors.Wrap(err, "error getting Azure credentials")
	}
	client, err := azkeys.NewClient(config.URL, credential, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error creating Azure Key Vault keys client")
	}
	return newKeyStore(client, config.KeyName, algorithm, config.Timeout), nil
}

func newKeyStore(
	client keysClient,
	keyName string,
	algorithm azkeys.EncryptionAlgorithm,
	timeout time.Duration,
) *keyStore {
	return &keyStore{
		client:    client,
		keyName:   keyName,
		algorithm: algorithm,
		timeout:   timeout,
	}
}

func encryptionAlgorithm(name string) (azkeys.EncryptionAlgorithm, error) {
	switch azkeys.EncryptionAlgorithm(name) {
	case azkeys.EncryptionAlgorithmRSAOAEP:
		return azkeys.EncryptionAlgorithmRSAOAEP, nil
	case azkeys.EncryptionAlgorithmRSAOAEP256:
		return azkeys.EncryptionAlgorithmRSAOAEP256, nil
	}
	return "", errors.Errorf(
		"unsupported key unwrap algorithm %q; supported algorithms are %q and %q",
		name,
		azkeys.EncryptionAlgorithmRSAOAEP,
		azkeys.EncryptionAlgorithmRSAOAEP256,
	)
}

func (k *keyStore) GetKey(ctx context.Context) (reservations.KeyHandle, error) {
	if k.unavailable != "" {
		return reservations.KeyHandle{},
			&reservations.ErrKeyUnavailable{Reason: k.unavailable}
	}
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()
	resp, err := k.client.GetKey(ctx, k.keyName, "", nil)
	if err != nil {
		return reservations.KeyHandle{}, &reservations.ErrKeyUnavailable{
			Reason: fmt.Sprintf("error retrieving key %q: %s", k.keyName, err),
		}
	}
	if resp.Key == nil || resp.Key.KID == nil {
		return reservations.KeyHandle{}, &reservations.ErrKeyUnavailable{
			Reason: "Key ID not found",
		}
	}
	return reservations.KeyHandle{
		Name:    resp.Key.KID.Name(),
		Version: resp.Key.KID.Version(),
	}, nil
}

func (k *keyStore) Decrypt(
	ctx context.Context,
	handle reservations.KeyHandle,
	ciphertext []byte,
) ([]byte, error) {
	if k.unavailable != "" {
		return nil, &reservations.ErrKeyUnavailable{Reason: k.unavailable}
	}
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()
	resp, err := k.client.Decrypt(
		ctx,
		handle.Name,
		handle.Version,
		azkeys.KeyOperationParameters{
			Algorithm: to.Ptr(k.algorithm),
			Value:     ciphertext,
		},
		&azkeys.DecryptOptions{},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "error decrypting with key %q", handle.Name)
	}
	return resp.Result, nil
}

func (k *keyStore) withTimeout(
	ctx context.Context,
) (context.Context, context.CancelFunc) {
	if k.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, k.timeout)
}
