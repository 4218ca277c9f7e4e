package reservations

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ServiceConfig encapsulates configuration options for the reservations
// service.
type ServiceConfig struct {
	// AdminRole is the role a session must carry to list reservations.
	AdminRole string `envconfig:"RESERVATIONS_ADMIN_ROLE" default:"admin"`
}

// UpstreamConfig encapsulates configuration options for the upstream
// reservations service.
type UpstreamConfig struct {
	// URL is the base URL of the upstream service.
	URL string `envconfig:"UPSTREAM_URL" required:"true"`
	// Timeout bounds each call to the upstream service.
	Timeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
}

// GetServiceConfigFromEnvironment returns reservations service configuration
// derived from environment variables.
func GetServiceConfigFromEnvironment() (ServiceConfig, error) {
	c := ServiceConfig{}
	err := envconfig.Process("", &c)
	return c, err
}

// GetUpstreamConfigFromEnvironment returns upstream configuration derived
// from environment variables.
func GetUpstreamConfigFromEnvironment() (UpstreamConfig, error) {
	c := UpstreamConfig{}
	err := envconfig.Process("", &c)
	return c, err
}
