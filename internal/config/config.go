// Package config provides configuration for the conversation backend.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the server configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Idea generator (OpenAI-compatible chat completions endpoint)
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Image search
	UnsplashAccessKey  string
	ImageSearchTimeout time.Duration

	// Logging
	LogLevel string
	Dev      bool
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:           getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:        getEnv("DATABASE_URL", "file:visualgenius.db?cache=shared&mode=rwc"),
		LLMBaseURL:         getEnv("LLM_BASE_URL", "http://localhost:4000"),
		LLMAPIKey:          getEnv("LLM_API_KEY", ""),
		LLMModel:           getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMTimeout:         time.Duration(getEnvInt("LLM_TIMEOUT_MS", 30000)) * time.Millisecond,
		UnsplashAccessKey:  getEnv("UNSPLASH_ACCESS_KEY", ""),
		ImageSearchTimeout: time.Duration(getEnvInt("IMAGE_SEARCH_TIMEOUT_MS", 10000)) * time.Millisecond,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Dev:                getEnv("APP_ENV", "production") == "development",
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
