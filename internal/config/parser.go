package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/goccy/go-yaml"
)

// Parser errors.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidYAML  = errors.New("invalid YAML format")
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// LoadConfig loads configuration from a file path. An empty path yields
// the defaults with environment overrides applied.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return ParseConfig(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	return ParseConfig(data)
}

// ParseConfig parses configuration from YAML data.
// It substitutes environment variables, merges the result over the
// defaults, then applies OBAENTRY_* overrides.
func ParseConfig(data []byte) (*Config, error) {
	return parseConfig(data, environ())
}

func parseConfig(data []byte, environment map[string]string) (*Config, error) {
	data = substituteEnvVars(data, environment)

	config := DefaultConfig()

	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	}

	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: environment,
	}
	if err := env.ParseWithOptions(config, opts); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	return config, nil
}

// substituteEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment variable values.
func substituteEnvVars(data []byte, environment map[string]string) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		content := string(match[2 : len(match)-1])

		if name, def, ok := strings.Cut(content, ":-"); ok {
			if val := environment[name]; val != "" {
				return []byte(val)
			}
			return []byte(def)
		}

		return []byte(environment[content])
	})
}

func environ() map[string]string {
	m := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}
