package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pep299/genai-finance-assistant/internal/metrics"
)

// mockHandler is a simple handler for testing
func mockHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusTeapot)
	w.Write([]byte("success"))
}

func TestCORS_SetsHeaders(t *testing.T) {
	handler := CORS("*")(http.HandlerFunc(mockHandler))

	req := httptest.NewRequest("POST", "/ask", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Equal(t, "success", w.Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS("https://example.com")(http.HandlerFunc(mockHandler))

	req := httptest.NewRequest("OPTIONS", "/ask", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Body.String())
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	recorder := metrics.NewRecorder()

	r := mux.NewRouter()
	r.Use(Logging(zap.New(core), recorder))
	r.HandleFunc("/ask", mockHandler).Methods("POST")

	req := httptest.NewRequest("POST", "/ask", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	entries := logs.FilterMessage("request served").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/ask", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), fields["request_id"])
}

func TestRouteNameUnmatched(t *testing.T) {
	req := httptest.NewRequest("GET", "/nowhere", nil)
	assert.Equal(t, "unmatched", routeName(req))
}
