// Package config loads process configuration from the environment.
package config

import (
	"encoding/base64"
	"fmt"
	"os"
)

// Config carries everything the composition root needs to start the server.
type Config struct {
	DatabaseURL string
	DBDriver    string
	ShowSQL     bool
	JWTSecret   []byte // decoded HMAC key
	Port        string
}

// Load reads configuration from the environment. The JWT secret is
// base64-encoded and must decode to at least 256 bits.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBDriver:    os.Getenv("DB_DRIVER"),
		ShowSQL:     os.Getenv("DB_SHOW_SQL") == "true",
		Port:        os.Getenv("APP_PORT"),
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = "postgres"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	encoded := os.Getenv("APP_JWT_SECRET")
	if encoded == "" {
		return nil, fmt.Errorf("APP_JWT_SECRET is required")
	}
	secret, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("APP_JWT_SECRET is not valid base64: %w", err)
	}
	if len(secret) < 32 {
		return nil, fmt.Errorf("APP_JWT_SECRET must decode to at least 256 bits, got %d", len(secret)*8)
	}
	cfg.JWTSecret = secret

	return cfg, nil
}
