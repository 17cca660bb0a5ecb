package config

import (
	"errors"
	"os"
	"strings"
)

// Config holds the runtime settings read from the environment (and .env).
type Config struct {
	Port         string
	JWTSecret    string
	CORSOrigins  []string
	DBLogLevel   string
	SeedDatabase bool
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable is not set")

func Load() (Config, error) {
	cfg := Config{
		Port:         envOrDefault("PORT", "8080"),
		JWTSecret:    strings.TrimSpace(os.Getenv("JWT_SECRET")),
		CORSOrigins:  parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		DBLogLevel:   envOrDefault("DB_LOG_LEVEL", "warn"),
		SeedDatabase: strings.EqualFold(envOrDefault("SEED_DATABASE", "false"), "true"),
	}
	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
