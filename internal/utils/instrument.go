package utils

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "adcompare"

type Instruments struct {
	gatherer prometheus.Gatherer

	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	extractions *prometheus.CounterVec
	comparisons *prometheus.CounterVec
	repairs     prometheus.Counter
}

// NewInstruments registers every collector on reg. Pass a fresh
// prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewInstruments(reg *prometheus.Registry) *Instruments {
	i := &Instruments{
		gatherer: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "extractions_total",
			Help: "Payload extractions by platform and outcome (record, absent).",
		}, []string{"platform", "outcome"}),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "comparisons_total",
			Help: "Comparisons by mode (pair, multi).",
		}, []string{"mode"}),
		repairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "repaired_bodies_total",
			Help: "Request bodies that needed JSON repair.",
		}),
	}
	reg.MustRegister(i.requests, i.latency, i.extractions, i.comparisons, i.repairs)
	return i
}

func (i *Instruments) Extraction(platform string, absent bool) {
	outcome := "record"
	if absent {
		outcome = "absent"
	}
	i.extractions.WithLabelValues(platform, outcome).Inc()
}

func (i *Instruments) Comparison(entities int) {
	mode := "multi"
	if entities == 2 {
		mode = "pair"
	}
	i.comparisons.WithLabelValues(mode).Inc()
}

func (i *Instruments) Repaired() { i.repairs.Inc() }

// Middleware records count and latency per chi route pattern.
func (i *Instruments) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		i.requests.WithLabelValues(r.Method, route, strconv.Itoa(status(ww))).Inc()
		i.latency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (i *Instruments) Handler() http.Handler {
	return promhttp.HandlerFor(i.gatherer, promhttp.HandlerOpts{})
}
