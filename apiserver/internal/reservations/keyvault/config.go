package keyvault

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envconfigPrefix = "KEY_VAULT"

// Config encapsulates configuration options for the Azure Key Vault key
// store. URL and KeyName are deliberately not required at startup. Without
// them, every unwrap attempt fails as key unavailable.
type Config struct {
	URL       string        `envconfig:"URL"`
	KeyName   string        `envconfig:"KEY_NAME"`
	Algorithm string        `envconfig:"ALGORITHM" default:"RSA-OAEP"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// GetConfigFromEnvironment returns Azure Key Vault configuration derived
// from environment variables.
func GetConfigFromEnvironment() (Config, error) {
	c := Config{}
	err := envconfig.Process(envconfigPrefix, &c)
	return c, err
}
