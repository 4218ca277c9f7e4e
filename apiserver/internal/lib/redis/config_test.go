package redis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	testCases := []struct {
		name       string
		config     config
		assertions func(t *testing.T, c config)
	}{
		{
			name: "plaintext",
			config: config{
				Host: "redis",
				Port: 6379,
				DB:   2,
			},
			assertions: func(t *testing.T, c config) {
				opts := c.options()
				require.Equal(t, "redis:6379", opts.Addr)
				require.Equal(t, 2, opts.DB)
				require.Nil(t, opts.TLSConfig)
			},
		},
		{
			name: "TLS",
			config: config{
				Host:      "redis.example.com",
				Port:      6380,
				Password:  "shhh",
				EnableTLS: true,
			},
			assertions: func(t *testing.T, c config) {
				opts := c.options()
				require.Equal(t, "redis.example.com:6380", opts.Addr)
				require.Equal(t, "shhh", opts.Password)
				require.NotNil(t, opts.TLSConfig)
				require.Equal(t, "redis.example.com", opts.TLSConfig.ServerName)
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.assertions(t, testCase.config)
		})
	}
}
