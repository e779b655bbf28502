// Package config provides configuration loading for obaentry.
package config

import "time"

// Config holds the complete client configuration.
type Config struct {
	LDAP    LDAPConfig  `yaml:"ldap" envPrefix:"LDAP_"`
	Logging LogConfig   `yaml:"logging" envPrefix:"LOG_"`
	Entry   EntryConfig `yaml:"entry" envPrefix:"ENTRY_"`
}

// LDAPConfig holds directory server connection settings.
type LDAPConfig struct {
	URL                string        `yaml:"url" env:"URL"`
	BindDN             string        `yaml:"bindDN" env:"BIND_DN"`
	BindPassword       string        `yaml:"bindPassword" env:"BIND_PASSWORD"`
	StartTLS           bool          `yaml:"startTLS" env:"START_TLS"`
	InsecureSkipVerify bool          `yaml:"insecureSkipVerify" env:"INSECURE_SKIP_VERIFY"`
	Timeout            time.Duration `yaml:"timeout" env:"TIMEOUT"`
	// RemoveMissingOK retries a modify without removals of attributes the
	// server does not have.
	RemoveMissingOK bool `yaml:"removeMissingOK" env:"REMOVE_MISSING_OK"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
	Output string `yaml:"output" env:"OUTPUT"`
}

// EntryConfig holds defaults applied to every entry the client saves.
type EntryConfig struct {
	Required      []string       `yaml:"required" env:"REQUIRED" envSeparator:","`
	ObjectClasses []string       `yaml:"objectClasses" env:"OBJECT_CLASSES" envSeparator:","`
	Password      PasswordConfig `yaml:"password" envPrefix:"PASSWORD_"`
}

// PasswordConfig controls how userPassword values are prepared.
type PasswordConfig struct {
	Scheme           string `yaml:"scheme" env:"SCHEME"`
	MinLength        int    `yaml:"minLength" env:"MIN_LENGTH"`
	RequireUppercase bool   `yaml:"requireUppercase" env:"REQUIRE_UPPERCASE"`
	RequireLowercase bool   `yaml:"requireLowercase" env:"REQUIRE_LOWERCASE"`
	RequireDigit     bool   `yaml:"requireDigit" env:"REQUIRE_DIGIT"`
	RequireSpecial   bool   `yaml:"requireSpecial" env:"REQUIRE_SPECIAL"`
}

// Redacted returns a copy of the configuration safe for printing.
func (c *Config) Redacted() *Config {
	out := *c
	if out.LDAP.BindPassword != "" {
		out.LDAP.BindPassword = "********"
	}
	out.Entry.Required = append([]string(nil), c.Entry.Required...)
	out.Entry.ObjectClasses = append([]string(nil), c.Entry.ObjectClasses...)
	return &out
}
