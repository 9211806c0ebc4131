package repository

import (
	"context"
	"strings"

	"github.com/pep299/genai-finance-assistant/internal/gemini"
)

// GenerationStatus classifies the outcome of one upstream call.
type GenerationStatus int

const (
	GenerationOK GenerationStatus = iota
	GenerationEmpty
	GenerationFailed
)

func (s GenerationStatus) String() string {
	switch s {
	case GenerationOK:
		return "ok"
	case GenerationEmpty:
		return "empty"
	case GenerationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Generation is the result of asking the upstream service one question.
// Err is set only when Status is GenerationFailed.
type Generation struct {
	Status GenerationStatus
	Text   string
	Err    error
}

type GeminiRepository interface {
	Generate(ctx context.Context, query string) Generation
}

type geminiRepository struct {
	client *gemini.Client
}

func NewGeminiRepository(client *gemini.Client) GeminiRepository {
	return &geminiRepository{
		client: client,
	}
}

func (g *geminiRepository) Generate(ctx context.Context, query string) Generation {
	text, err := g.client.GenerateContent(ctx, query)
	if err != nil {
		return Generation{Status: GenerationFailed, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return Generation{Status: GenerationEmpty}
	}
	return Generation{Status: GenerationOK, Text: text}
}
