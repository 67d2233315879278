package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddr = ":8080"
	defaultAPIBaseURL = "http://127.0.0.1:8000/api/"
	devSessionSecret  = "marksweb-development-session-key"
)

// Provider exposes configuration through getters so handlers and tests can
// depend on an interface instead of the concrete struct.
type Provider interface {
	GetServerAddr() string
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
	GetSessionSecret() string
	GetAppEnv() string
	IsProduction() bool
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string
	APIBaseURL    string
	APITimeout    time.Duration
	SessionSecret string
	AppEnv        string
}

// New loads configuration from a .env file (if any) and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// FromEnv reads the configuration from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ServerAddr:    getenv("SERVER_ADDR", defaultServerAddr),
		APIBaseURL:    getenv("API_BASE_URL", defaultAPIBaseURL),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AppEnv:        strings.ToLower(getenv("APP_ENV", "development")),
	}

	if raw := os.Getenv("API_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid API_TIMEOUT %q: %w", raw, err)
		}
		cfg.APITimeout = d
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET must be set when APP_ENV=production")
		}
		cfg.SessionSecret = devSessionSecret
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetServerAddr() string        { return c.ServerAddr }
func (c *Config) GetAPIBaseURL() string        { return c.APIBaseURL }
func (c *Config) GetAPITimeout() time.Duration { return c.APITimeout }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetAppEnv() string            { return c.AppEnv }

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool { return c.AppEnv == "production" }
