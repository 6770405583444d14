package config

import (
	"log/slog"
	"os"
	"time"
)

const devSecret = "dev-secret-change-in-production"

type Config struct {
	Port           string
	Env            string
	DatabaseDSN    string
	JWTSecret      string
	JWTExpiry      time.Duration
	DictionaryPath string
	DictionaryURL  string
}

// Load reads configuration from the environment, falling back to development
// defaults. DictionaryPath and DictionaryURL are optional overrides for the
// built-in corpus; path wins when both are set.
func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/wordpass?parseTime=true"),
		JWTSecret:      getEnv("JWT_SECRET", devSecret),
		JWTExpiry:      getDuration("JWT_EXPIRY", 24*time.Hour),
		DictionaryPath: os.Getenv("DICTIONARY_PATH"),
		DictionaryURL:  os.Getenv("DICTIONARY_URL"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
