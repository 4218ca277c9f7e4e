package authx

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envconfigPrefix = "API_SERVER"

// SessionsServiceConfig encapsulates configuration options for the sessions
// service.
type SessionsServiceConfig struct {
	// SessionSecret is the key used to sign and verify session tokens.
	SessionSecret string `envconfig:"SESSION_SECRET" required:"true"`
	// SessionTTL is how long a session remains valid after it is created.
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	// ProviderName identifies sessions established through the configured
	// identity provider.
	ProviderName string `ignored:"true"`
}

// GetSessionsServiceConfigFromEnvironment returns sessions service
// configuration derived from environment variables.
func GetSessionsServiceConfigFromEnvironment() (SessionsServiceConfig, error) {
	c := SessionsServiceConfig{}
	err := envconfig.Process(envconfigPrefix, &c)
	return c, err
}
