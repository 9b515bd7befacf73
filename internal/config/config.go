package config

import (
	"os"
	"strconv"
)

type Config struct {
	CatalogURL    string
	CatalogAPIKey string
	LogLevel      string

	PageSize    int
	MetricsAddr string
	RulesPath   string

	RetryMaxAttempts      int
	RetryInitialBackoffMS int
	RetryMaxBackoffMS     int

	BreakerEnabled      bool
	BreakerMinRequests  int
	BreakerOpenTimeoutS int
}

func Load() Config {
	return Config{
		CatalogURL:    mustEnv("CATALOG_URL", "http://localhost:2283"),
		CatalogAPIKey: mustEnv("CATALOG_API_KEY", ""),
		LogLevel:      mustEnv("LOG_LEVEL", "info"),

		PageSize:    mustEnvInt("PAGE_SIZE", 1000),
		MetricsAddr: mustEnv("METRICS_ADDR", ""),
		RulesPath:   mustEnv("RULES_PATH", ""),

		RetryMaxAttempts:      mustEnvInt("RETRY_MAX_ATTEMPTS", 3),
		RetryInitialBackoffMS: mustEnvInt("RETRY_INITIAL_BACKOFF_MS", 200),
		RetryMaxBackoffMS:     mustEnvInt("RETRY_MAX_BACKOFF_MS", 2000),

		BreakerEnabled:      mustEnvBool("BREAKER_ENABLED", true),
		BreakerMinRequests:  mustEnvInt("BREAKER_MIN_REQUESTS", 8),
		BreakerOpenTimeoutS: mustEnvInt("BREAKER_OPEN_TIMEOUT_S", 15),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
