package obs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	QuotesTotal         prometheus.Counter
	FaultsTotal         *prometheus.CounterVec
	FailuresTotal       prometheus.Counter
	RatesCacheHitsTotal prometheus.Counter
	OutgoingDuration    *prometheus.HistogramVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	Registry            *prometheus.Registry
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		QuotesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quotes_generated_total",
			Help: "Number of hotel quotes generated",
		}),
		FaultsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quote_request_faults_total",
			Help: "Rejected quote requests by fault type",
		}, []string{"type"}),
		FailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quote_request_failures_total",
			Help: "Quote requests which failed for reasons other than their content",
		}),
		RatesCacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "exchange_rates_cache_hits_total",
			Help: "Exchange rate snapshots served from cache",
		}),
		OutgoingDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "outgoing_request_duration_seconds",
				Help:    "Latency of outgoing requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"destination", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Registry: registry,
	}

	registry.MustRegister(
		m.QuotesTotal,
		m.FaultsTotal,
		m.FailuresTotal,
		m.RatesCacheHitsTotal,
		m.OutgoingDuration,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

func (m *Metrics) AddQuotes(count int) { m.QuotesTotal.Add(float64(count)) }

func (m *Metrics) IncFaults(faultType string) { m.FaultsTotal.WithLabelValues(faultType).Inc() }

func (m *Metrics) IncFailures() { m.FailuresTotal.Inc() }

func (m *Metrics) IncRatesCacheHits() { m.RatesCacheHitsTotal.Inc() }

func (m *Metrics) ObserveOutgoing(destination string, status int, seconds float64) {
	m.OutgoingDuration.WithLabelValues(destination, strconv.Itoa(status)).Observe(seconds)
}

// Middleware records every request under its route template, unmatched
// requests are grouped under an empty path.
func (m *Metrics) Middleware(c *gin.Context) {
	startTime := time.Now()

	c.Next()

	status := strconv.Itoa(c.Writer.Status())
	m.HTTPRequestDuration.WithLabelValues(c.Request.Method, c.FullPath(), status).Observe(time.Since(startTime).Seconds())
	m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, c.FullPath(), status).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
