// Package config
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Address        string
	AllowedOrigins []string

	// Two separate stores: domain data and identity data.
	DatabaseURL         string
	IdentityDatabaseURL string

	JWTSecret     string
	JWTIssuer     string
	JWTAudience   string
	JWTExpiresIn  time.Duration
	JWTExpiryDays int

	LogLevel  string
	LogFormat string

	RedisAddr       string
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// Load reads the environment (optionally seeded from a .env file) and fails
// on any missing mandatory key. The server must not come up half-configured.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Address:   getEnv("HTTP_ADDR", ":8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		LoginRateLimit:  10,
		LoginRateWindow: time.Minute,
	}

	rawOrigins := os.Getenv("ALLOWED_ORIGINS")
	if rawOrigins != "" {
		for _, o := range strings.Split(rawOrigins, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	var err error
	if cfg.DatabaseURL, err = requireEnv("DATABASE_URL"); err != nil {
		return nil, err
	}
	if cfg.IdentityDatabaseURL, err = requireEnv("IDENTITY_DATABASE_URL"); err != nil {
		return nil, err
	}
	if cfg.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.JWTIssuer, err = requireEnv("JWT_ISSUER"); err != nil {
		return nil, err
	}
	if cfg.JWTAudience, err = requireEnv("JWT_AUDIENCE"); err != nil {
		return nil, err
	}

	rawDays, err := requireEnv("JWT_EXPIRES_IN_DAYS")
	if err != nil {
		return nil, err
	}
	days, err := strconv.Atoi(rawDays)
	if err != nil || days <= 0 {
		return nil, fmt.Errorf("config: JWT_EXPIRES_IN_DAYS must be a positive integer, got %q", rawDays)
	}
	cfg.JWTExpiryDays = days
	cfg.JWTExpiresIn = time.Duration(days) * 24 * time.Hour

	if raw := os.Getenv("LOGIN_RATE_LIMIT"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			cfg.LoginRateLimit = limit
		}
	}
	if raw := os.Getenv("LOGIN_RATE_WINDOW"); raw != "" {
		if window, err := time.ParseDuration(raw); err == nil && window > 0 {
			cfg.LoginRateWindow = window
		}
	}

	return cfg, nil
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("config: %s is required", key)
	}
	return v, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
