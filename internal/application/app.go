package application

import (
	"go.uber.org/zap"

	"github.com/pep299/genai-finance-assistant/internal/config"
	"github.com/pep299/genai-finance-assistant/internal/gemini"
	"github.com/pep299/genai-finance-assistant/internal/metrics"
	"github.com/pep299/genai-finance-assistant/internal/repository"
	"github.com/pep299/genai-finance-assistant/internal/service"
	"github.com/pep299/genai-finance-assistant/internal/topic"
	"github.com/pep299/genai-finance-assistant/internal/transport/handler"
)

// Application holds every long-lived component, built once at startup.
type Application struct {
	Config      *config.Config
	Logger      *zap.Logger
	Metrics     *metrics.Recorder
	Assistant   *service.Assistant
	AskHandler  *handler.Ask
	PageHandler *handler.Page
}

// New wires the application against the real Gemini API.
func New(cfg *config.Config, logger *zap.Logger) *Application {
	client := gemini.NewClient(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		gemini.WithBaseURL(cfg.GeminiBaseURL),
		gemini.WithTimeout(cfg.UpstreamTimeout),
	)
	return NewWithRepository(cfg, logger, repository.NewGeminiRepository(client))
}

// NewWithRepository wires the application around an arbitrary upstream.
func NewWithRepository(cfg *config.Config, logger *zap.Logger, geminiRepo repository.GeminiRepository) *Application {
	recorder := metrics.NewRecorder()

	assistant := service.NewAssistant(
		geminiRepo,
		topic.NewKeywords(cfg.TopicKeywords...),
		cfg.UpstreamTimeout,
		logger.Named("assistant"),
		recorder,
	)

	return &Application{
		Config:      cfg,
		Logger:      logger,
		Metrics:     recorder,
		Assistant:   assistant,
		AskHandler:  handler.NewAsk(assistant, logger.Named("ask")),
		PageHandler: handler.NewPage(cfg.AppTitle, logger.Named("page")),
	}
}

// Close flushes buffered log entries.
func (a *Application) Close() error {
	return a.Logger.Sync()
}
