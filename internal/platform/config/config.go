// Package config loads runtime settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads KEY=VALUE pairs from path into the environment.
// Variables already set in the environment win. A missing file is not an error.
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		slog.Info(".env not found; using system environment variables", "path", path)
	}
}

// GetString retrieves an environment variable or returns a fallback when unset.
func GetString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// GetBool retrieves an environment variable as bool or returns fallback.
func GetBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("invalid bool value", "key", key, "error", err)
		return fallback
	}
	return parsed
}

// GetDuration retrieves an environment variable as time.Duration or returns fallback.
func GetDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration value", "key", key, "error", err)
		return fallback
	}
	return parsed
}

// GetList splits a comma separated environment variable, dropping blank items.
func GetList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// GetLevel retrieves an environment variable as slog.Level or returns fallback.
func GetLevel(key string, fallback slog.Level) slog.Level {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		slog.Warn("invalid log level", "key", key, "error", err)
		return fallback
	}
	return level
}

// Server holds the settings of the HTTP server process.
type Server struct {
	Port                string
	LogLevel            slog.Level
	AllowedEmailDomains []string
	CacheTTL            time.Duration
	RunMigrations       bool
}

// LoadServer reads the server settings from the environment.
func LoadServer() Server {
	return Server{
		Port:                GetString("PORT", "5009"),
		LogLevel:            GetLevel("LOG_LEVEL", slog.LevelInfo),
		AllowedEmailDomains: GetList("ALLOWED_EMAIL_DOMAINS", []string{"gmail.com", "yahoo.com", "outlook.com"}),
		CacheTTL:            GetDuration("CACHE_TTL", 5*time.Minute),
		RunMigrations:       GetBool("RUN_MIGRATIONS", true),
	}
}
