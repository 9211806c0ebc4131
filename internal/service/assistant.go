package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pep299/genai-finance-assistant/internal/formatter"
	"github.com/pep299/genai-finance-assistant/internal/metrics"
	"github.com/pep299/genai-finance-assistant/internal/repository"
	"github.com/pep299/genai-finance-assistant/internal/topic"
)

// Fixed replies for every non-success outcome.
const (
	MsgEmptyQuery     = "⚠️ Please enter a question."
	MsgOutOfDomain    = "⚠️ This assistant only responds to finance and investment-related queries. Please ask something in that domain."
	MsgEmptyUpstream  = "🤖 Gemini returned an empty response. Please try rephrasing your question."
	MsgUpstreamFailed = "❌ Something went wrong while generating the response."
)

// Outcome is how a single question was resolved.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeEmptyQuery
	OutcomeOutOfDomain
	OutcomeUpstreamFailure
	OutcomeEmptyUpstreamResponse
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeEmptyQuery:
		return "empty_query"
	case OutcomeOutOfDomain:
		return "out_of_domain"
	case OutcomeUpstreamFailure:
		return "upstream_failure"
	case OutcomeEmptyUpstreamResponse:
		return "empty_upstream_response"
	default:
		return "unknown"
	}
}

// Answer is what the caller gets back: formatted HTML on success, one of the
// fixed messages otherwise.
type Answer struct {
	Outcome  Outcome
	Response string
}

type Assistant struct {
	gemini   repository.GeminiRepository
	keywords topic.Keywords
	timeout  time.Duration
	logger   *zap.Logger
	metrics  *metrics.Recorder
}

func NewAssistant(
	gemini repository.GeminiRepository,
	keywords topic.Keywords,
	timeout time.Duration,
	logger *zap.Logger,
	recorder *metrics.Recorder,
) *Assistant {
	return &Assistant{
		gemini:   gemini,
		keywords: keywords,
		timeout:  timeout,
		logger:   logger,
		metrics:  recorder,
	}
}

// Ask runs one question through the filter, Gemini and the formatter.
// It never returns an error: every failure maps to a fixed message.
func (a *Assistant) Ask(ctx context.Context, query string) Answer {
	answer := a.ask(ctx, query)
	a.metrics.ObserveAnswer(answer.Outcome.String())
	return answer
}

func (a *Assistant) ask(ctx context.Context, query string) Answer {
	if strings.TrimSpace(query) == "" {
		return Answer{Outcome: OutcomeEmptyQuery, Response: MsgEmptyQuery}
	}

	if !topic.IsInDomain(query, a.keywords) {
		a.logger.Debug("query rejected by topic filter", zap.Int("query_len", len(query)))
		return Answer{Outcome: OutcomeOutOfDomain, Response: MsgOutOfDomain}
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	gen := a.gemini.Generate(ctx, query)
	elapsed := time.Since(start)
	a.metrics.ObserveUpstream(gen.Status.String(), elapsed)

	switch gen.Status {
	case repository.GenerationOK:
		return Answer{Outcome: OutcomeSuccess, Response: formatter.Format(gen.Text)}
	case repository.GenerationEmpty:
		a.logger.Warn("gemini returned an empty response", zap.Duration("duration", elapsed))
		return Answer{Outcome: OutcomeEmptyUpstreamResponse, Response: MsgEmptyUpstream}
	case repository.GenerationFailed:
		a.logger.Error("gemini request failed", zap.Error(gen.Err), zap.Duration("duration", elapsed))
		return Answer{Outcome: OutcomeUpstreamFailure, Response: MsgUpstreamFailed}
	default:
		a.logger.Error("unexpected generation status", zap.Error(fmt.Errorf("status %d", gen.Status)))
		return Answer{Outcome: OutcomeUpstreamFailure, Response: MsgUpstreamFailed}
	}
}
