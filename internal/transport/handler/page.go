package handler

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Title       string
	Placeholder string
}

// Page serves the chat front end.
type Page struct {
	data   pageData
	logger *zap.Logger
}

func NewPage(title string, logger *zap.Logger) *Page {
	return &Page{
		data: pageData{
			Title:       title,
			Placeholder: "Ask your finance question...",
		},
		logger: logger,
	}
}

func (h *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, h.data); err != nil {
		h.logger.Error("rendering page", zap.Error(err))
	}
}
