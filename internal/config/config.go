// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// APIBaseURL points at the backend REST API, e.g. "http://localhost:5000/api".
	APIBaseURL string
	// BaseURL is this app's public URL, used when building absolute links.
	BaseURL string
	// CookieSecret signs every cookie this app issues.
	CookieSecret []byte
	// SecureCookies marks cookies Secure; enable behind TLS.
	SecureCookies bool
}

// Load reads configuration from the environment. COOKIE_SECRET is the only
// required key.
func Load() (Config, error) {
	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("COOKIE_SECRET environment variable is required")
	}

	return Config{
		Addr:          envOr("ADDR", ":8080"),
		APIBaseURL:    envOr("API_BASE_URL", "http://localhost:5000/api"),
		BaseURL:       envOr("BASE_URL", "http://localhost:8080"),
		CookieSecret:  []byte(secret),
		SecureCookies: os.Getenv("COOKIE_SECURE") == "true",
	}, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
