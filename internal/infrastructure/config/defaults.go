package config

import "github.com/bnema/bridgehost/internal/domain/entity"

// Default configuration constants
const (
	defaultStartURL = "about:blank"
	defaultAppID    = "io.github.bnema.bridgehost"

	// Permissions defaults
	defaultRequestTimeoutSeconds = 60

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 5
	defaultMaxLogAgeDays = 7

	// Window defaults
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
	defaultWindowTitle  = "bridgehost"
)

// DefaultConfig returns the default configuration. Paths are left empty and
// resolved against the XDG directories at load time.
func DefaultConfig() *Config {
	return &Config{
		StartURL: defaultStartURL,
		AppID:    defaultAppID,
		Permissions: PermissionsConfig{
			PrecheckOSPermissions: true,
			Policy: PolicyConfig{
				Mode: string(entity.PolicyGrantAll),
			},
			RequestTimeoutSeconds: defaultRequestTimeoutSeconds,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAgeDays:    defaultMaxLogAgeDays,
			Compress:      true,
		},
		Window: WindowConfig{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
			Title:  defaultWindowTitle,

			InhibitIdle: true,
		},
	}
}
