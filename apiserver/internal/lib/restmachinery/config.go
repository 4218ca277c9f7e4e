package restmachinery

import (
	"errors"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const envconfigPrefix = "API_SERVER"

// Config represents configuration for the HTTP server. We use an exported
// interface to govern access to our config because the underlying struct has
// fields we don't want to expose.
type Config interface {
	Port() int
	TLSEnabled() bool
	TLSCertPath() string
	TLSKeyPath() string
	AllowedOrigins() []string
	CookieSecure() bool
}

type config struct {
	PortAttr           int    `envconfig:"PORT"`
	TLSEnabledAttr     bool   `envconfig:"TLS_ENABLED"`
	TLSCertPathAttr    string `envconfig:"TLS_CERT_PATH"`
	TLSKeyPathAttr     string `envconfig:"TLS_KEY_PATH"`
	AllowedOriginsAttr string `envconfig:"ALLOWED_ORIGINS"`
	CookieSecureAttr   bool   `envconfig:"COOKIE_SECURE"`
}

// NewConfigWithDefaults returns a Config object with default values already
// applied. Callers are then free to set custom values for the remaining fields
// and/or override default values.
func NewConfigWithDefaults() Config {
	return &config{
		PortAttr: 8080,
	}
}

// GetConfigFromEnvironment returns configuration derived from environment
// variables
func GetConfigFromEnvironment() (Config, error) {
	c := NewConfigWithDefaults().(*config)
	if err := envconfig.Process(envconfigPrefix, c); err != nil {
		return c, err
	}
	if c.TLSEnabledAttr {
		if c.TLSCertPathAttr == "" {
			return c, errors.New(
				"with TLS enabled, a value is required for the " +
					"TLS_CERT_PATH environment variable",
			)
		}
		if c.TLSKeyPathAttr == "" {
			return c, errors.New(
				"with TLS enabled, a value is required for the " +
					"TLS_KEY_PATH environment variable",
			)
		}
	}
	return c, nil
}

func (c *config) Port() int {
	return c.PortAttr
}

func (c *config) TLSEnabled() bool {
	return c.TLSEnabledAttr
}

func (c *config) TLSCertPath() string {
	return c.TLSCertPathAttr
}

func (c *config) TLSKeyPath() string {
	return c.TLSKeyPathAttr
}

func (c *config) AllowedOrigins() []string {
	if c.AllowedOriginsAttr == "" {
		return nil
	}
	origins := strings.Split(c.AllowedOriginsAttr, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}

func (c *config) CookieSecure() bool {
	return c.CookieSecureAttr
}
