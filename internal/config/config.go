// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Claim policies accepted by CLAIM_POLICY.
const (
	// ClaimPolicyAgents lets only admins and travel agents create or claim travelers.
	ClaimPolicyAgents = "agents"
	// ClaimPolicyAny lets any authenticated caller create or claim travelers.
	ClaimPolicyAny = "any"
)

const minJWTSecretLength = 32

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// JWTSecret signs bearer tokens. Required, at least 32 bytes.
	JWTSecret string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFile, when set, receives a rotated copy of the JSON log stream.
	LogFile string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// ClaimPolicy decides who may call POST /travelers.
	// One of ClaimPolicyAgents (default) or ClaimPolicyAny.
	ClaimPolicy string

	// TokenTTL is the lifetime of issued bearer tokens. Defaults to 1h.
	TokenTTL time.Duration

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// LoginRatePerMinute caps sign-in attempts per client IP. Defaults to 10.
	LoginRatePerMinute int
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first variable whose value cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     os.Getenv("LOG_FILE"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		ClaimPolicy: getEnv("CLAIM_POLICY", ClaimPolicyAgents),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if len(cfg.JWTSecret) < minJWTSecretLength {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLength)
	}
	if cfg.ClaimPolicy != ClaimPolicyAgents && cfg.ClaimPolicy != ClaimPolicyAny {
		return Config{}, fmt.Errorf("CLAIM_POLICY must be %q or %q, got %q", ClaimPolicyAgents, ClaimPolicyAny, cfg.ClaimPolicy)
	}

	var err error
	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "1h")); err != nil || cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be a positive duration, got %q", os.Getenv("TOKEN_TTL"))
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be a positive integer, got %q", os.Getenv("MAX_BODY_BYTES"))
	}
	if cfg.LoginRatePerMinute, err = strconv.Atoi(getEnv("LOGIN_RATE_PER_MINUTE", "10")); err != nil || cfg.LoginRatePerMinute <= 0 {
		return Config{}, fmt.Errorf("LOGIN_RATE_PER_MINUTE must be a positive integer, got %q", os.Getenv("LOGIN_RATE_PER_MINUTE"))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
