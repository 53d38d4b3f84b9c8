// File: internal/config/config_test.go

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every recognized variable so ambient environment can't
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvBaseURL, EnvAPIKey, EnvTimeout, EnvConfigFile} {
		t.Setenv(key, "")
	}
}

// pointDefaultConfigAt redirects the default config file location into a
// temp dir for the duration of the test.
func pointDefaultConfigAt(t *testing.T, path string) {
	t.Helper()
	orig := getConfigPath
	t.Cleanup(func() { getConfigPath = orig })
	getConfigPath = func() (string, error) { return path, nil }
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	pointDefaultConfigAt(t, filepath.Join(t.TempDir(), "config.yaml"))

	t.Setenv(EnvBaseURL, "https://pond.example.com/")
	t.Setenv(EnvAPIKey, "secret-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BaseURL != "https://pond.example.com" {
		t.Errorf("Expected trailing slash trimmed, got %q", cfg.BaseURL)
	}
	if cfg.APIKey != "secret-key" {
		t.Errorf("Expected APIKey %q, got %q", "secret-key", cfg.APIKey)
	}
	if cfg.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("Expected default timeout %d, got %d", DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		apiKey  string
		wantVar string
	}{
		{"missing base URL", "", "secret-key", EnvBaseURL},
		{"missing API key", "https://pond.example.com", "", EnvAPIKey},
		{"missing both reports base URL first", "", "", EnvBaseURL},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clearEnv(t)
			pointDefaultConfigAt(t, filepath.Join(t.TempDir(), "config.yaml"))

			t.Setenv(EnvBaseURL, test.baseURL)
			t.Setenv(EnvAPIKey, test.apiKey)

			_, err := Load("")
			if err == nil {
				t.Fatal("Load() succeeded, want configuration error")
			}
			if !strings.Contains(err.Error(), test.wantVar) {
				t.Errorf("Error %q doesn't name %s", err, test.wantVar)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	pointDefaultConfigAt(t, configPath)

	content := "base_url: https://file.example.com\napi_key: file-key\ntimeout: 30\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BaseURL != "https://file.example.com" {
		t.Errorf("Expected BaseURL from file, got %q", cfg.BaseURL)
	}
	if cfg.APIKey != "file-key" {
		t.Errorf("Expected APIKey from file, got %q", cfg.APIKey)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("Expected timeout 30, got %d", cfg.TimeoutSeconds)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	pointDefaultConfigAt(t, configPath)

	content := "base_url: https://file.example.com\napi_key: file-key\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv(EnvBaseURL, "https://env.example.com")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("Expected env to override file, got %q", cfg.BaseURL)
	}
	if cfg.APIKey != "file-key" {
		t.Errorf("Expected untouched file value to survive, got %q", cfg.APIKey)
	}
}

func TestTimeoutFromEnv(t *testing.T) {
	clearEnv(t)
	pointDefaultConfigAt(t, filepath.Join(t.TempDir(), "config.yaml"))

	t.Setenv(EnvBaseURL, "https://pond.example.com")
	t.Setenv(EnvAPIKey, "secret-key")
	t.Setenv(EnvTimeout, "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Timeout() != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.Timeout())
	}
}

func TestInvalidTimeout(t *testing.T) {
	clearEnv(t)
	pointDefaultConfigAt(t, filepath.Join(t.TempDir(), "config.yaml"))

	t.Setenv(EnvBaseURL, "https://pond.example.com")
	t.Setenv(EnvAPIKey, "secret-key")
	t.Setenv(EnvTimeout, "0")

	_, err := Load("")
	if err == nil {
		t.Fatal("Load() succeeded with zero timeout, want error")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Errorf("Error %q doesn't mention timeout", err)
	}
}

func TestExplicitConfigFileMissing(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("Load() succeeded with missing explicit config file, want error")
	}
}

func TestMalformedConfigFile(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("base_url: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() succeeded with malformed config file, want error")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("Error %q doesn't mention parsing", err)
	}
}
