package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTopicKeywords is the finance vocabulary a query must touch to be answered.
var DefaultTopicKeywords = []string{
	"finance", "investment", "stock", "mutual fund", "savings", "bank",
	"portfolio", "money", "financial", "debt", "equity", "interest", "risk",
}

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Gemini API settings
	GeminiAPIKey    string        `json:"-"` // Don't expose in JSON
	GeminiModel     string        `json:"gemini_model"`
	GeminiBaseURL   string        `json:"gemini_base_url"`
	UpstreamTimeout time.Duration `json:"upstream_timeout"`

	// Topic filter
	TopicKeywords []string `json:"topic_keywords"`

	// HTTP surface
	AllowedOrigin string `json:"allowed_origin"`
	AppTitle      string `json:"app_title"`

	// Logging
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Host:            getEnvOrDefault("HOST", "0.0.0.0"),
		GeminiAPIKey:    getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-pro"),
		GeminiBaseURL:   getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		UpstreamTimeout: time.Duration(getEnvOrDefaultInt("UPSTREAM_TIMEOUT_SECONDS", 60)) * time.Second,
		TopicKeywords:   DefaultTopicKeywords,
		AllowedOrigin:   getEnvOrDefault("CORS_ALLOWED_ORIGIN", "*"),
		AppTitle:        getEnvOrDefault("APP_TITLE", "GenAI Financial Assistant"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", "json"),
	}

	if raw := os.Getenv("TOPIC_KEYWORDS"); raw != "" {
		config.TopicKeywords = parseStringSlice(raw)
	}

	return config, config.validate()
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	if c.GeminiAPIKey == "" {
		return &ConfigError{Field: "GEMINI_API_KEY", Message: "Gemini API key is required"}
	}
	if c.UpstreamTimeout <= 0 {
		return &ConfigError{Field: "UPSTREAM_TIMEOUT_SECONDS", Message: "must be a positive number of seconds"}
	}
	if len(c.TopicKeywords) == 0 {
		return &ConfigError{Field: "TOPIC_KEYWORDS", Message: "at least one keyword is required"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// parseStringSlice parses comma-separated string into slice
func parseStringSlice(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
