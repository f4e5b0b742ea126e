// Package metrics provides Prometheus metrics for the resolver, the credential
// provider and the HTTP API.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "agentcore_mcp"

// Resolution outcomes.
const (
	OutcomeResolved = "resolved"
	OutcomeSkipped  = "skipped"
	OutcomeFailed   = "failed"
)

// Token sources.
const (
	TokenSourceSession  = "session"
	TokenSourceCache    = "secret_cache"
	TokenSourceIdentity = "identity_provider"
	TokenSourceFailed   = "unavailable"
)

// Metrics owns a private registry. All methods are safe on a nil receiver so
// components can take an optional *Metrics.
type Metrics struct {
	reg *prometheus.Registry

	HTTPRequests         *prometheus.CounterVec
	HTTPDuration         prometheus.Histogram
	Resolutions          *prometheus.CounterVec
	KeyCollisions        prometheus.Counter
	TokenRequests        *prometheus.CounterVec
	SecretWriteFailures  prometheus.Counter
	ControlPlaneLookups  *prometheus.CounterVec
	ProbeToolsDiscovered *prometheus.GaugeVec

	log logger.Logger
}

// NewMetrics creates a Metrics instance with every collector registered.
func NewMetrics(l logger.Logger) *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		log: l,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_responses_total",
			Help:      "HTTP responses returned, by status code",
		}, []string{"code"}),
		HTTPDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.3, 0.5, 0.7, 1.0, 3.0, 5.0, 7.0, 10.0},
		}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "server_resolutions_total",
			Help:      "MCP server resolutions, by server name and outcome",
		}, []string{"server", "outcome"}),
		KeyCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "server_key_collisions_total",
			Help:      "Resolved entries that overwrote an earlier entry with the same key",
		}),
		TokenRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bearer_token_requests_total",
			Help:      "Bearer token lookups, by the source that satisfied them",
		}, []string{"source"}),
		SecretWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "secret_write_failures_total",
			Help:      "Fresh tokens that could not be persisted to the secret store",
		}),
		ControlPlaneLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "control_plane_lookups_total",
			Help:      "AgentCore control plane lookups, by kind and outcome",
		}, []string{"kind", "outcome"}),
		ProbeToolsDiscovered: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "probe_tools_discovered",
			Help:      "Tools listed by the most recent probe of each server",
		}, []string{"server"}),
	}

	m.reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.Resolutions,
		m.KeyCollisions,
		m.TokenRequests,
		m.SecretWriteFailures,
		m.ControlPlaneLookups,
		m.ProbeToolsDiscovered,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// ObserveResolution records the outcome of resolving one server name.
func (m *Metrics) ObserveResolution(server, outcome string) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(server, outcome).Inc()
}

// ObserveKeyCollision records a last-write-wins overwrite in a merged config set.
func (m *Metrics) ObserveKeyCollision() {
	if m == nil {
		return
	}
	m.KeyCollisions.Inc()
}

// ObserveToken records where a bearer token came from.
func (m *Metrics) ObserveToken(source string) {
	if m == nil {
		return
	}
	m.TokenRequests.WithLabelValues(source).Inc()
}

// ObserveSecretWriteFailure records a failed token persist.
func (m *Metrics) ObserveSecretWriteFailure() {
	if m == nil {
		return
	}
	m.SecretWriteFailures.Inc()
}

// ObserveLookup records a control plane lookup.
func (m *Metrics) ObserveLookup(kind string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.ControlPlaneLookups.WithLabelValues(kind, outcome).Inc()
}

// ObserveProbe records how many tools a probed server listed.
func (m *Metrics) ObserveProbe(server string, tools int) {
	if m == nil {
		return
	}
	m.ProbeToolsDiscovered.WithLabelValues(server).Set(float64(tools))
}

// HTTPMiddleware returns a Chi-compatible middleware that tracks HTTP metrics
func (m *Metrics) HTTPMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			m.HTTPDuration.Observe(time.Since(start).Seconds())
			m.HTTPRequests.WithLabelValues(strconv.Itoa(rw.statusCode)).Inc()
		})
	}
}

// Listen starts a dedicated metrics listener. The returned channel receives the
// listener error, if any, and is closed when the server stops.
func (m *Metrics) Listen(ctx context.Context, port int) <-chan error {
	m.log.Info("Starting metrics listener", logger.IntField("port", port))
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	go func() {
		<-ctx.Done()
		m.log.Info("Stopping metrics listener")
		_ = server.Shutdown(context.Background())
	}()
	return errChan
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
