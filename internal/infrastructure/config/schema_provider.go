package config

import (
	"fmt"
	"strconv"

	"github.com/bnema/bridgehost/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionGeneral     = "General"
	SectionPermissions = "Permissions"
	SectionLogging     = "Logging"
	SectionDatabase    = "Database"
	SectionWindow      = "Window"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 24)
	keys = append(keys, p.getGeneralKeys(defaults)...)
	keys = append(keys, p.getPermissionsKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getWindowKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getGeneralKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "start_url",
			Type:        "string",
			Default:     defaults.StartURL,
			Description: "Page loaded when the host window opens",
			Section:     SectionGeneral,
		},
		{
			Key:         "app_id",
			Type:        "string",
			Default:     defaults.AppID,
			Description: "Application id used by GTK and the desktop portal",
			Section:     SectionGeneral,
		},
	}
}

func (*SchemaProvider) getPermissionsKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "permissions.precheck_os_permissions",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Permissions.PrecheckOSPermissions),
			Description: "Check camera and microphone on startup and request both when either is missing",
			Section:     SectionPermissions,
		},
		{
			Key:         "permissions.policy.mode",
			Type:        "string",
			Default:     defaults.Permissions.Policy.Mode,
			Description: "How in-page media requests are decided",
			Values:      []string{string(entity.PolicyGrantAll), string(entity.PolicyAllowList)},
			Section:     SectionPermissions,
		},
		{
			Key:         "permissions.policy.allow_list",
			Type:        "array",
			Default:     "[]",
			Description: "Origins and the capabilities (camera, microphone, display, device-info) they receive in allow_list mode",
			Section:     SectionPermissions,
		},
		{
			Key:         "permissions.request_timeout_seconds",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Permissions.RequestTimeoutSeconds),
			Description: "How long an explicit OS permission request waits for the answer",
			Range:       "1-600",
			Section:     SectionPermissions,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Logging.EnableFileLog),
			Description: "Also write JSON logs to a rotated file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "(XDG state dir)/logs",
			Description: "Directory for rotated log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Rotate the log file after this many megabytes",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Rotated files to keep",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age_days",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxAgeDays),
			Description: "Delete rotated files older than this",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.compress",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Logging.Compress),
			Description: "Gzip rotated files",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "(XDG data dir)/" + databaseName,
			Description: "SQLite file holding the grant log",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getWindowKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "window.width",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Window.Width),
			Description: "Initial window width in pixels",
			Range:       "320-7680",
			Section:     SectionWindow,
		},
		{
			Key:         "window.height",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Window.Height),
			Description: "Initial window height in pixels",
			Range:       "240-4320",
			Section:     SectionWindow,
		},
		{
			Key:         "window.title",
			Type:        "string",
			Default:     defaults.Window.Title,
			Description: "Window title",
			Section:     SectionWindow,
		},
		{
			Key:         "window.inhibit_idle",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Window.InhibitIdle),
			Description: "Inhibit idle and suspend while the page captures camera or microphone",
			Section:     SectionWindow,
		},
	}
}
