package config

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	// Set some test environment variables
	os.Setenv("GEMINI_API_KEY", "test-key")
	defer os.Unsetenv("GEMINI_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("Expected GeminiAPIKey to be 'test-key', got '%s'", cfg.GeminiAPIKey)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected Port to be '8080', got '%s'", cfg.Port)
	}

	if cfg.GeminiModel != "gemini-1.5-pro" {
		t.Errorf("Expected GeminiModel to be 'gemini-1.5-pro', got '%s'", cfg.GeminiModel)
	}

	if cfg.UpstreamTimeout != 60*time.Second {
		t.Errorf("Expected UpstreamTimeout to be 60s, got %v", cfg.UpstreamTimeout)
	}

	if len(cfg.TopicKeywords) != len(DefaultTopicKeywords) {
		t.Errorf("Expected %d default keywords, got %d", len(DefaultTopicKeywords), len(cfg.TopicKeywords))
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Expected Addr '0.0.0.0:8080', got '%s'", cfg.Addr())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	os.Setenv("GEMINI_API_KEY", "test-key")
	os.Setenv("TOPIC_KEYWORDS", "tax, pension ,")
	os.Setenv("UPSTREAM_TIMEOUT_SECONDS", "5")
	defer func() {
		os.Unsetenv("GEMINI_API_KEY")
		os.Unsetenv("TOPIC_KEYWORDS")
		os.Unsetenv("UPSTREAM_TIMEOUT_SECONDS")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.TopicKeywords) != 2 || cfg.TopicKeywords[0] != "tax" || cfg.TopicKeywords[1] != "pension" {
		t.Errorf("Expected keywords [tax pension], got %v", cfg.TopicKeywords)
	}

	if cfg.UpstreamTimeout != 5*time.Second {
		t.Errorf("Expected UpstreamTimeout to be 5s, got %v", cfg.UpstreamTimeout)
	}
}

func TestConfigValidation(t *testing.T) {
	// Test missing required fields
	os.Unsetenv("GEMINI_API_KEY")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected validation error for missing required fields")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected *ConfigError, got %T", err)
	}
	if cfgErr.Field != "GEMINI_API_KEY" {
		t.Errorf("Expected field GEMINI_API_KEY, got '%s'", cfgErr.Field)
	}
}

func TestConfigValidationTimeout(t *testing.T) {
	os.Setenv("GEMINI_API_KEY", "test-key")
	os.Setenv("UPSTREAM_TIMEOUT_SECONDS", "0")
	defer func() {
		os.Unsetenv("GEMINI_API_KEY")
		os.Unsetenv("UPSTREAM_TIMEOUT_SECONDS")
	}()

	if _, err := Load(); err == nil {
		t.Error("Expected validation error for zero timeout")
	}
}

func TestParseStringSlice(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", []string{}},
		{"a", []string{"a"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{"a, b , c ", []string{"a", "b", "c"}},
		{"a,,b", []string{"a", "b"}},
	}

	for _, test := range tests {
		result := parseStringSlice(test.input)
		if len(result) != len(test.expected) {
			t.Errorf("For input '%s', expected length %d, got %d", test.input, len(test.expected), len(result))
			continue
		}
		for i, expected := range test.expected {
			if result[i] != expected {
				t.Errorf("For input '%s', expected[%d] = '%s', got '%s'", test.input, i, expected, result[i])
			}
		}
	}
}
