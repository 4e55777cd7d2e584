package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Permissions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name: "allow list with wildcard",
			mutate: func(c *Config) {
				c.Permissions.Policy.AllowList = []AllowListEntry{{Origin: "*", Capabilities: []string{"mic"}}}
			},
		},
		{
			name:    "unknown mode",
			mutate:  func(c *Config) { c.Permissions.Policy.Mode = "ask" },
			wantErr: "permissions.policy.mode",
		},
		{
			name: "unknown capability",
			mutate: func(c *Config) {
				c.Permissions.Policy.AllowList = []AllowListEntry{{Origin: "https://a.example", Capabilities: []string{"geolocation"}}}
			},
			wantErr: "unknown capability",
		},
		{
			name:    "timeout out of range",
			mutate:  func(c *Config) { c.Permissions.RequestTimeoutSeconds = 0 },
			wantErr: "permissions.request_timeout_seconds",
		},
		{
			name:    "relative start url",
			mutate:  func(c *Config) { c.StartURL = "meet.example.com" },
			wantErr: "start_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_Logging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	cfg.Logging.Format = "xml"
	cfg.Logging.MaxBackups = -1

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "logging.max_backups")
}
