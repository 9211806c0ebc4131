package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/pep299/genai-finance-assistant/internal/service"
	"github.com/pep299/genai-finance-assistant/internal/transport/response"
)

const maxAskBodyBytes = 64 << 10

type Ask struct {
	assistant *service.Assistant
	logger    *zap.Logger
}

func NewAsk(assistant *service.Assistant, logger *zap.Logger) *Ask {
	return &Ask{
		assistant: assistant,
		logger:    logger,
	}
}

type askRequest struct {
	Query string `json:"query"`
}

func (h *Ask) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAskBodyBytes)).Decode(&req); err != nil {
		h.logger.Warn("invalid ask payload", zap.Error(err))
		response.WriteAnswer(w, http.StatusBadRequest, service.MsgUpstreamFailed)
		return
	}

	answer := h.assistant.Ask(r.Context(), req.Query)
	if err := response.WriteAnswer(w, http.StatusOK, answer.Response); err != nil {
		h.logger.Error("writing ask response", zap.Error(err))
	}
}
