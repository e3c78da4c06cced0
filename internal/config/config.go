// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the proxy reads from the environment. It is built
// once in main and passed down; request handlers never touch os.Getenv.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// Razorpay key pair, used only for basic auth against the upstream API.
	RazorpayKeyID     string
	RazorpayKeySecret string

	// APIKey is the shared secret callers must present in X-API-Key.
	APIKey string

	// AllowedOrigins for CORS. Empty means unrestricted.
	AllowedOrigins []string
}

// Load reads the environment and fails if any required credential is missing,
// so the process refuses to start half-configured.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		APIKey:            os.Getenv("API_KEY"),
	}

	var missing []string
	if cfg.RazorpayKeyID == "" {
		missing = append(missing, "RAZORPAY_KEY_ID")
	}
	if cfg.RazorpayKeySecret == "" {
		missing = append(missing, "RAZORPAY_KEY_SECRET")
	}
	if cfg.APIKey == "" {
		missing = append(missing, "API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

// Redact returns a loggable form of a secret: the first few characters only.
func Redact(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "..."
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
