package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pep299/genai-finance-assistant/internal/gemini"
)

func newTestRepo(t *testing.T, status int, body string) GeminiRepository {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return NewGeminiRepository(gemini.NewClient("test-key", "test-model", gemini.WithBaseURL(server.URL)))
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected GenerationStatus
		text     string
	}{
		{
			name:     "text returned",
			status:   http.StatusOK,
			body:     `{"candidates":[{"content":{"parts":[{"text":"Stocks are shares."}]}}]}`,
			expected: GenerationOK,
			text:     "Stocks are shares.",
		},
		{
			name:     "no candidates",
			status:   http.StatusOK,
			body:     `{"candidates":[]}`,
			expected: GenerationEmpty,
		},
		{
			name:     "whitespace only",
			status:   http.StatusOK,
			body:     `{"candidates":[{"content":{"parts":[{"text":"  \n "}]}}]}`,
			expected: GenerationEmpty,
		},
		{
			name:     "auth failure",
			status:   http.StatusForbidden,
			body:     `{"error":{"message":"API key not valid"}}`,
			expected: GenerationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(t, tt.status, tt.body)

			gen := repo.Generate(context.Background(), "What is a stock?")

			assert.Equal(t, tt.expected, gen.Status, "status %s", gen.Status)
			assert.Equal(t, tt.text, gen.Text)
			if tt.expected == GenerationFailed {
				require.Error(t, gen.Err)
			} else {
				assert.NoError(t, gen.Err)
			}
		})
	}
}

func TestGenerationStatusString(t *testing.T) {
	assert.Equal(t, "ok", GenerationOK.String())
	assert.Equal(t, "empty", GenerationEmpty.String())
	assert.Equal(t, "failed", GenerationFailed.String())
	assert.Equal(t, "unknown", GenerationStatus(42).String())
}
