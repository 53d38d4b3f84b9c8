// File: internal/config/config.go

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by the client.
const (
	EnvBaseURL    = "POND_BASE_URL"
	EnvAPIKey     = "POND_API_KEY"
	EnvTimeout    = "POND_TIMEOUT"
	EnvConfigFile = "POND_CONFIG"
)

// DefaultTimeoutSeconds bounds a whole request, matching the server's
// slowest expected operation (embedding generation on store).
const DefaultTimeoutSeconds = 60

// Config holds all client configuration. It is read once at startup and
// never mutated afterwards; the client never writes it back to disk.
type Config struct {
	// BaseURL is the address of the Pond service, without the /api/v1 prefix.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey is the bearer credential attached to every request.
	APIKey string `json:"api_key" yaml:"api_key"`

	// TimeoutSeconds is the whole-request timeout.
	TimeoutSeconds int `json:"timeout" yaml:"timeout"`
}

// getConfigPath returns the default config file location. Overridable in tests.
var getConfigPath = func() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "pond", "config.yaml"), nil
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Load builds the configuration for one invocation.
//
// Precedence, lowest to highest: defaults, optional YAML config file,
// environment variables. A missing file at the default location is fine;
// a file named explicitly (argument or POND_CONFIG) must exist.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := configPath != ""
	if !explicit {
		configPath = os.Getenv(EnvConfigFile)
		explicit = configPath != ""
	}
	if !explicit {
		if p, err := getConfigPath(); err == nil {
			configPath = p
		}
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		case explicit || !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	overrideFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}

// Validate fails fast on anything that would make every request fail,
// before a single network call is attempted.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("%s not set: export it or add base_url to the config file", EnvBaseURL)
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%s not set: export it or add api_key to the config file", EnvAPIKey)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be a positive number of seconds, got %d", c.TimeoutSeconds)
	}
	return nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// overrideFromEnv overrides configuration values from environment variables
func overrideFromEnv(cfg *Config) {
	if val := os.Getenv(EnvBaseURL); val != "" {
		cfg.BaseURL = val
	}
	if val := os.Getenv(EnvAPIKey); val != "" {
		cfg.APIKey = val
	}
	if val := os.Getenv(EnvTimeout); val != "" {
		if secs, err := strconv.Atoi(val); err == nil {
			cfg.TimeoutSeconds = secs
		}
	}
}
