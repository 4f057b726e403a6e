package grpcplugin

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts calls served by the daemon. A nil *Metrics records nothing.
type Metrics struct {
	calls       *prometheus.CounterVec
	streamBytes *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashes",
			Name:      "calls_total",
			Help:      "Hash command calls by command and outcome.",
		}, []string{"command", "outcome"}),
		streamBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashes",
			Name:      "stream_bytes_total",
			Help:      "Bytes hashed from streamed input.",
		}, []string{"command"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hashes",
			Name:      "call_duration_seconds",
			Help:      "Hash command call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"command"}),
	}
	reg.MustRegister(m.calls, m.streamBytes, m.duration)
	return m
}

func (m *Metrics) observe(command, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(command, outcome).Inc()
	m.duration.WithLabelValues(command).Observe(d.Seconds())
}

func (m *Metrics) addStreamBytes(command string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.streamBytes.WithLabelValues(command).Add(float64(n))
}

// HTTPHandler serves /metrics from gatherer and a /healthz liveness probe.
func HTTPHandler(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}
