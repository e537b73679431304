package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// 環境変数の読み込みはこのパッケージに集約する。
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// EDINET DB API
	EDINET EDINETConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// EDINETConfig holds EDINET DB API configuration.
type EDINETConfig struct {
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	RateLimit   int           // requests per second against the upstream API
	StatusEvery time.Duration // upstream status probe interval
}

// Load reads configuration from environment variables.
// EDINET_API_KEY は必須。未設定なら起動エラーにする。
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8000"),
		Env:  getEnv("ENV", "development"),

		EDINET: EDINETConfig{
			APIKey:      getEnv("EDINET_API_KEY", ""),
			BaseURL:     getEnv("EDINET_BASE_URL", "https://edinetdb.jp/v1"),
			Timeout:     getEnvAsDuration("EDINET_TIMEOUT", "30s"),
			RateLimit:   getEnvAsInt("EDINET_RATE_LIMIT", 10),
			StatusEvery: getEnvAsDuration("EDINET_STATUS_INTERVAL", "5m"),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.EDINET.APIKey == "" {
		return fmt.Errorf("EDINET_API_KEY is required (.env.local または環境変数に設定してください)")
	}

	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
		".env.local",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
