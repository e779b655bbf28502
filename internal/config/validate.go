package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/KilimcininKorOglu/obaentry/internal/password"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration and returns a list of validation errors.
// An empty slice indicates the configuration is valid.
func ValidateConfig(config *Config) []error {
	var errs []error

	errs = append(errs, validateLDAPConfig(&config.LDAP)...)
	errs = append(errs, validateLogConfig(&config.Logging)...)
	errs = append(errs, validateEntryConfig(&config.Entry)...)

	return errs
}

// validateLDAPConfig validates connection settings.
func validateLDAPConfig(config *LDAPConfig) []error {
	var errs []error

	if config.URL == "" {
		errs = append(errs, ValidationError{
			Field:   "ldap.url",
			Message: "is required",
		})
	} else if u, err := url.Parse(config.URL); err != nil {
		errs = append(errs, ValidationError{
			Field:   "ldap.url",
			Message: err.Error(),
		})
	} else {
		switch strings.ToLower(u.Scheme) {
		case "ldap", "ldapi":
		case "ldaps":
			if config.StartTLS {
				errs = append(errs, ValidationError{
					Field:   "ldap.startTLS",
					Message: "cannot be used with an ldaps URL",
				})
			}
		default:
			errs = append(errs, ValidationError{
				Field:   "ldap.url",
				Message: "scheme must be ldap, ldaps, or ldapi",
			})
		}
	}

	if config.BindPassword != "" && config.BindDN == "" {
		errs = append(errs, ValidationError{
			Field:   "ldap.bindDN",
			Message: "bind DN is required when a bind password is specified",
		})
	}

	if config.Timeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "ldap.timeout",
			Message: "must be non-negative",
		})
	}

	return errs
}

// validateLogConfig validates logging configuration.
func validateLogConfig(config *LogConfig) []error {
	var errs []error

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if config.Level != "" && !validLevels[strings.ToLower(config.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: "must be debug, info, warn, or error",
		})
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if config.Format != "" && !validFormats[strings.ToLower(config.Format)] {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: "must be text or json",
		})
	}

	if config.Output != "" && config.Output != "stdout" && config.Output != "stderr" && !filepath.IsAbs(config.Output) {
		errs = append(errs, ValidationError{
			Field:   "logging.output",
			Message: "must be stdout, stderr, or an absolute file path",
		})
	}

	return errs
}

// validateEntryConfig validates entry defaults.
func validateEntryConfig(config *EntryConfig) []error {
	var errs []error

	for i, name := range config.Required {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("entry.required[%d]", i),
				Message: "attribute name must not be empty",
			})
		}
	}

	for i, name := range config.ObjectClasses {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("entry.objectClasses[%d]", i),
				Message: "object class name must not be empty",
			})
		}
	}

	if _, err := password.NormalizeScheme(config.Password.Scheme); err != nil {
		errs = append(errs, ValidationError{
			Field:   "entry.password.scheme",
			Message: fmt.Sprintf("must be one of %s", strings.Join(password.Schemes(), ", ")),
		})
	}

	if config.Password.MinLength < 0 {
		errs = append(errs, ValidationError{
			Field:   "entry.password.minLength",
			Message: "must be non-negative",
		})
	}

	return errs
}
