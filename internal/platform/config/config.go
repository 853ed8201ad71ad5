package config

import (
	"os"
	"time"
)

// Server captures everything the demo authorization server reads from the
// environment.
type Server struct {
	Addr             string
	BaseURL          string
	ServiceAPIKey    string
	ServiceAPISecret string
	APITimeout       time.Duration
	LogLevel         string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("AUTHLINK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	timeout := 5 * time.Second
	if raw := os.Getenv("AUTHLINK_API_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			timeout = parsed
		}
	}

	return Server{
		Addr:             addr,
		BaseURL:          os.Getenv("AUTHLINK_API_URL"),
		ServiceAPIKey:    os.Getenv("AUTHLINK_SERVICE_API_KEY"),
		ServiceAPISecret: os.Getenv("AUTHLINK_SERVICE_API_SECRET"),
		APITimeout:       timeout,
		LogLevel:         os.Getenv("AUTHLINK_LOG_LEVEL"),
	}
}
