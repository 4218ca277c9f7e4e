package local

import "github.com/kelseyhightower/envconfig"

const envconfigPrefix = "KEY_VAULT"

// Config encapsulates configuration options for the local key store.
type Config struct {
	// PrivateKeyPath is the path to a PEM encoded RSA private key. When it is
	// empty, the local key store is not used.
	PrivateKeyPath string `envconfig:"LOCAL_PRIVATE_KEY_PATH"`
	Algorithm      string `envconfig:"ALGORITHM" default:"RSA-OAEP"`
}

// GetConfigFromEnvironment returns local key store configuration derived
// from environment variables.
func GetConfigFromEnvironment() (Config, error) {
	c := Config{}
	err := envconfig.Process(envconfigPrefix, &c)
	return c, err
}
