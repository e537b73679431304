package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	os.Setenv("EDINET_API_KEY", "edb_test_key")
	defer os.Unsetenv("EDINET_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8000" {
		t.Errorf("Expected Port to be 8000, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.EDINET.BaseURL != "https://edinetdb.jp/v1" {
		t.Errorf("Expected default EDINET base URL, got %s", cfg.EDINET.BaseURL)
	}

	if cfg.EDINET.Timeout != 30*time.Second {
		t.Errorf("Expected EDINET timeout 30s, got %v", cfg.EDINET.Timeout)
	}

	if cfg.EDINET.RateLimit != 10 {
		t.Errorf("Expected EDINET rate limit 10, got %d", cfg.EDINET.RateLimit)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("EDINET_API_KEY", "edb_test_key")
	os.Setenv("EDINET_BASE_URL", "http://localhost:8081/v1")
	os.Setenv("EDINET_TIMEOUT", "5s")
	os.Setenv("LOG_LEVEL", "debug")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("EDINET_API_KEY")
		os.Unsetenv("EDINET_BASE_URL")
		os.Unsetenv("EDINET_TIMEOUT")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.EDINET.BaseURL != "http://localhost:8081/v1" {
		t.Errorf("Expected custom base URL, got %s", cfg.EDINET.BaseURL)
	}

	if cfg.EDINET.Timeout != 5*time.Second {
		t.Errorf("Expected EDINET timeout 5s, got %v", cfg.EDINET.Timeout)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be debug, got %s", cfg.LogLevel)
	}
}

func TestValidateMissingAPIKey(t *testing.T) {
	os.Unsetenv("EDINET_API_KEY")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when EDINET_API_KEY is missing, got nil")
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	os.Setenv("EDINET_API_KEY", "edb_test_key")
	os.Setenv("ENV", "invalid")

	defer func() {
		os.Unsetenv("EDINET_API_KEY")
		os.Unsetenv("ENV")
	}()

	_, err := Load()
	if err == nil {
		t.Error("Expected error for invalid ENV, got nil")
	}
}

func TestGetEnvAsDurationFallback(t *testing.T) {
	os.Setenv("EDINET_TIMEOUT", "not-a-duration")
	os.Setenv("EDINET_API_KEY", "edb_test_key")

	defer func() {
		os.Unsetenv("EDINET_TIMEOUT")
		os.Unsetenv("EDINET_API_KEY")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.EDINET.Timeout != 30*time.Second {
		t.Errorf("Expected fallback timeout 30s, got %v", cfg.EDINET.Timeout)
	}
}
