package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounters(t *testing.T) {
	r := NewRecorder()

	r.ObserveAnswer("success")
	r.ObserveAnswer("success")
	r.ObserveAnswer("out_of_domain")
	r.ObserveHTTP("POST", "/ask", 200)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.answers.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.answers.WithLabelValues("out_of_domain")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("POST", "/ask", "200")))
}

func TestRecorderHandler(t *testing.T) {
	r := NewRecorder()
	r.ObserveUpstream("ok", 1500*time.Millisecond)
	r.ObserveAnswer("success")

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `finance_assistant_answers_total{outcome="success"} 1`))
	assert.True(t, strings.Contains(body, `finance_assistant_upstream_duration_seconds_count{status="ok"} 1`))
}
