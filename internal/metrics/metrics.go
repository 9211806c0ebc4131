package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "finance_assistant"

// Recorder owns the service's collectors on a private registry.
type Recorder struct {
	registry         *prometheus.Registry
	answers          *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
}

// NewRecorder registers all collectors, plus Go and process collectors, on a
// fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{
		registry: reg,
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Answers returned, by outcome.",
		}, []string{"outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Latency of Gemini generateContent calls, by result status.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"status"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status code.",
		}, []string{"method", "route", "code"}),
	}

	reg.MustRegister(
		r.answers,
		r.upstreamDuration,
		r.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveAnswer counts one answer with the given outcome label.
func (r *Recorder) ObserveAnswer(outcome string) {
	r.answers.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records the duration of one upstream call.
func (r *Recorder) ObserveUpstream(status string, d time.Duration) {
	r.upstreamDuration.WithLabelValues(status).Observe(d.Seconds())
}

// ObserveHTTP counts one served HTTP request.
func (r *Recorder) ObserveHTTP(method, route string, code int) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
