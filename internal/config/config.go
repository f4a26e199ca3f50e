package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"plate-auction-web/internal/session"
)

// Auction backends
const (
	BackendHTTP   = "http"
	BackendMemory = "memory"
)

// AuctionConfig describes how the front end reaches the auction service
type AuctionConfig struct {
	Backend string
	BaseURL string
	Timeout time.Duration
}

// SessionConfig describes the session token cookie
type SessionConfig struct {
	CookieName   string
	SecureCookie bool
}

// Config is the application configuration, populated from environment variables.
// A .env file is picked up by the godotenv autoload import in main.
type Config struct {
	Port     string
	LogLevel string
	Auction  AuctionConfig
	Session  SessionConfig
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	timeout, err := parseSeconds("AUCTION_TIMEOUT", 10)
	if err != nil {
		return nil, err
	}

	secure, err := parseBool("COOKIE_SECURE", false)
	if err != nil {
		return nil, err
	}

	backend := strings.ToLower(getEnv("AUCTION_BACKEND", BackendHTTP))
	if backend != BackendHTTP && backend != BackendMemory {
		return nil, fmt.Errorf("invalid AUCTION_BACKEND value %q: want %q or %q", backend, BackendHTTP, BackendMemory)
	}

	port := getEnv("PORT", "8080")
	if strings.Contains(port, " ") {
		return nil, fmt.Errorf("invalid PORT value: %q", port)
	}

	return &Config{
		Port:     port,
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Auction: AuctionConfig{
			Backend: backend,
			BaseURL: getEnv("AUCTION_BASE_URL", "http://127.0.0.1:8000"),
			Timeout: timeout,
		},
		Session: SessionConfig{
			CookieName:   getEnv("SESSION_COOKIE", session.DefaultCookieName),
			SecureCookie: secure,
		},
	}, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	// PORT may already be ":8080" or "127.0.0.1:8080"
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseBool(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}

func parseSeconds(key string, def int) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return time.Duration(def) * time.Second, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be positive", key, raw)
	}
	return time.Duration(v) * time.Second, nil
}
