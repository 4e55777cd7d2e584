package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/bridgehost/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values.
// Every problem is reported, not only the first one.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateGeneral(config)...)
	validationErrors = append(validationErrors, validatePermissions(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateGeneral(config *Config) []string {
	var validationErrors []string
	if config.StartURL == "" {
		validationErrors = append(validationErrors, "start_url must not be empty")
	} else if u, err := url.Parse(config.StartURL); err != nil || u.Scheme == "" {
		validationErrors = append(validationErrors, fmt.Sprintf("start_url %q must be an absolute URL", config.StartURL))
	}
	if config.AppID == "" {
		validationErrors = append(validationErrors, "app_id must not be empty")
	}
	return validationErrors
}

func validatePermissions(config *Config) []string {
	var validationErrors []string
	perms := config.Permissions

	switch entity.PolicyMode(perms.Policy.Mode) {
	case entity.PolicyGrantAll, entity.PolicyAllowList:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("permissions.policy.mode must be one of: grant_all, allow_list (got %q)", perms.Policy.Mode))
	}

	for i, entry := range perms.Policy.AllowList {
		if entry.Origin != "*" {
			if _, err := entity.NormalizeOrigin(entry.Origin); err != nil {
				validationErrors = append(validationErrors,
					fmt.Sprintf("permissions.policy.allow_list[%d].origin: %v", i, err))
			}
		}
		for _, c := range entry.Capabilities {
			if _, ok := entity.ParseCapability(c); !ok {
				validationErrors = append(validationErrors,
					fmt.Sprintf("permissions.policy.allow_list[%d].capabilities: unknown capability %q", i, c))
			}
		}
	}

	if perms.RequestTimeoutSeconds < 1 || perms.RequestTimeoutSeconds > 600 {
		validationErrors = append(validationErrors, "permissions.request_timeout_seconds must be between 1 and 600")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, fatal (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: console, json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width < 320 || config.Window.Width > 7680 {
		validationErrors = append(validationErrors, "window.width must be between 320 and 7680")
	}
	if config.Window.Height < 240 || config.Window.Height > 4320 {
		validationErrors = append(validationErrors, "window.height must be between 240 and 4320")
	}
	return validationErrors
}
