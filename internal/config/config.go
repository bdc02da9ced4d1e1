package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration, loaded from the
// environment
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	JWT     JWTConfig
	Admin   AdminConfig
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host string
	Port int
}

// StorageConfig selects and configures the storage backend
type StorageConfig struct {
	// Type is "memory" or "redis"
	Type     string
	RedisURL string
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// AdminConfig describes the admin account bootstrapped at startup
type AdminConfig struct {
	Name     string
	Username string
	Password string
}

// Load builds a Config from environment variables, applying defaults
// for everything except the JWT secret, which is required.
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", ""),
			Port: port,
		},
		Storage: StorageConfig{
			Type:     getEnv("STORAGE_TYPE", "memory"),
			RedisURL: getEnv("REDIS_URL", ""),
		},
		JWT: JWTConfig{
			Secret: secret,
			TTL:    ttl,
		},
		Admin: AdminConfig{
			Name:     getEnv("ADMIN_NAME", "Administrator"),
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}

	if cfg.Storage.Type == "redis" && cfg.Storage.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required when STORAGE_TYPE=redis")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
