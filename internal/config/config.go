package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Upstream definitions API
	APIOrigin string // origin used for lookups and request classification

	// Lookup cache
	LookupTTL        time.Duration
	LookupMaxEntries int

	// Offline cache
	CacheVersion string // names the static store; bump to force a re-install
	RedisURL     string // empty = in-memory store (development)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Wordbook"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerAddr: getEnv("SERVER_ADDR", ":3000"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:3000"),

		APIOrigin: getEnv("API_ORIGIN", "https://api.dictionaryapi.dev"),

		LookupTTL:        getEnvDuration("LOOKUP_CACHE_TTL", time.Hour),
		LookupMaxEntries: getEnvInt("LOOKUP_CACHE_MAX_ENTRIES", 50),

		CacheVersion: getEnv("CACHE_VERSION", "v1"),
		RedisURL:     getEnv("REDIS_URL", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		SiteTitle:   getEnv("SITE_TITLE", "Wordbook"),
		SiteTagline: getEnv("SITE_TAGLINE", "Look up any word, online or off"),
		SiteFooter:  getEnv("SITE_FOOTER", "Wordbook - definitions with offline support"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
