package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/pep299/genai-finance-assistant/internal/application"
	"github.com/pep299/genai-finance-assistant/internal/config"
	"github.com/pep299/genai-finance-assistant/internal/logger"
	"github.com/pep299/genai-finance-assistant/internal/transport/middleware"
	"github.com/pep299/genai-finance-assistant/internal/transport/response"
)

// NewRouter configures HTTP routes
func NewRouter(app *application.Application) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.CORS(app.Config.AllowedOrigin))
	r.Use(middleware.Logging(app.Logger.Named("http"), app.Metrics))

	r.Handle("/", app.PageHandler).Methods(http.MethodGet)
	// OPTIONS must match the route so the CORS middleware sees preflights.
	r.Handle("/ask", app.AskHandler).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/hc", healthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", app.Metrics.Handler()).Methods(http.MethodGet)

	return r
}

// healthCheck provides health check endpoint
func healthCheck(w http.ResponseWriter, r *http.Request) {
	response.WriteHealth(w)
}

// CreateHandler loads configuration and builds the full HTTP handler.
func CreateHandler() (http.Handler, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}

	app := application.New(cfg, log)
	cleanup := func() {
		_ = app.Close()
	}

	return NewRouter(app), cleanup, nil
}

var (
	fnOnce    sync.Once
	fnHandler http.Handler
	fnErr     error
)

// HandleRequest handles a single HTTP request (for Cloud Functions). The
// handler is built on first use and reused by later invocations.
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	fnOnce.Do(func() {
		fnHandler, _, fnErr = CreateHandler()
		if fnErr != nil {
			// Config failed, so there is no configured logger yet.
			fallback, _ := zap.NewProduction()
			fallback.Error("failed to create handler", zap.Error(fnErr))
		}
	})
	if fnErr != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	fnHandler.ServeHTTP(w, r)
}
