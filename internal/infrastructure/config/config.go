// Package config provides configuration management for bridgehost with Viper integration.
package config

import "github.com/bnema/bridgehost/internal/domain/entity"

// Config represents the complete configuration for bridgehost.
type Config struct {
	// StartURL is the page loaded when the host window opens.
	StartURL string `mapstructure:"start_url" toml:"start_url" json:"start_url"`
	// AppID is the application id registered with GTK and the desktop portal.
	AppID       string            `mapstructure:"app_id" toml:"app_id" json:"app_id"`
	Permissions PermissionsConfig `mapstructure:"permissions" toml:"permissions" json:"permissions"`
	Database    DatabaseConfig    `mapstructure:"database" toml:"database" json:"database"`
	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
	Window      WindowConfig      `mapstructure:"window" toml:"window" json:"window"`
}

// PermissionsConfig controls the OS check and the in-page grant policy.
type PermissionsConfig struct {
	// PrecheckOSPermissions checks camera and microphone on startup and asks
	// the OS for both when either is missing.
	PrecheckOSPermissions bool         `mapstructure:"precheck_os_permissions" toml:"precheck_os_permissions" json:"precheck_os_permissions"`
	Policy                PolicyConfig `mapstructure:"policy" toml:"policy" json:"policy"`
	// RequestTimeoutSeconds bounds how long `permissions request` waits for the OS answer.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" toml:"request_timeout_seconds" json:"request_timeout_seconds"`
}

// PolicyConfig selects how in-page media requests are decided.
type PolicyConfig struct {
	// Mode is "grant_all" or "allow_list".
	Mode string `mapstructure:"mode" toml:"mode" json:"mode" jsonschema:"enum=grant_all,enum=allow_list"`
	// AllowList is only read in allow_list mode.
	AllowList []AllowListEntry `mapstructure:"allow_list" toml:"allow_list,omitempty" json:"allow_list,omitempty"`
}

// AllowListEntry grants capabilities to one origin. Origin "*" matches every page.
type AllowListEntry struct {
	Origin       string   `mapstructure:"origin" toml:"origin" json:"origin"`
	Capabilities []string `mapstructure:"capabilities" toml:"capabilities" json:"capabilities"`
}

// DatabaseConfig holds the grant log location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// WindowConfig sizes the host window.
type WindowConfig struct {
	Width  int    `mapstructure:"width" toml:"width" json:"width"`
	Height int    `mapstructure:"height" toml:"height" json:"height"`
	Title  string `mapstructure:"title" toml:"title" json:"title"`
	// InhibitIdle keeps the screen awake while the page captures camera or microphone.
	InhibitIdle bool `mapstructure:"inhibit_idle" toml:"inhibit_idle" json:"inhibit_idle"`
}

// GrantPolicy converts the policy section into a domain policy.
func (c *Config) GrantPolicy() (entity.GrantPolicy, error) {
	policy := entity.GrantPolicy{Mode: entity.PolicyMode(c.Permissions.Policy.Mode)}
	if policy.Mode == entity.PolicyAllowList {
		policy.AllowList = make(map[string][]entity.Capability, len(c.Permissions.Policy.AllowList))
		for _, e := range c.Permissions.Policy.AllowList {
			// An entry without capabilities still lists the origin.
			if _, ok := policy.AllowList[e.Origin]; !ok {
				policy.AllowList[e.Origin] = []entity.Capability{}
			}
			for _, name := range e.Capabilities {
				policy.AllowList[e.Origin] = append(policy.AllowList[e.Origin], entity.Capability(name))
			}
		}
	}
	if err := policy.Validate(); err != nil {
		return entity.GrantPolicy{}, err
	}
	return policy, nil
}
