package config

import (
	"time"

	"github.com/KilimcininKorOglu/obaentry/internal/password"
)

// EnvPrefix is the prefix of every environment variable override.
const EnvPrefix = "OBAENTRY_"

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		LDAP: LDAPConfig{
			URL:             "ldap://localhost:389",
			Timeout:         10 * time.Second,
			RemoveMissingOK: true,
		},
		Logging: LogConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
		Entry: EntryConfig{
			Password: PasswordConfig{
				Scheme: password.DefaultScheme,
			},
		},
	}
}
