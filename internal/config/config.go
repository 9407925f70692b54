// Package config loads server configuration from the environment. A .env file
// in the working directory is honored when present.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP
	Addr string

	// Storage: empty means the seeded in-memory store.
	DatabaseURL string

	// Auth
	JWTSecret string

	// Assistant: empty disables POST /assistant.
	OpenAIAPIKey string

	// Logging
	LogLevel  string
	LogFormat string
	LogOutput string
}

// Load reads configuration from the environment, loading .env first if it
// exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Addr:         getEnv("ADDR", ":8080"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "console"),
		LogOutput:    getEnv("LOG_OUTPUT", "stdout"),
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
