package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveHelpers(t *testing.T) {
	m := NewMetrics(logger.NewNopLogger())

	m.ObserveResolution("basic", OutcomeResolved)
	m.ObserveResolution("basic", OutcomeResolved)
	m.ObserveResolution("agentcore gateway", OutcomeFailed)
	m.ObserveKeyCollision()
	m.ObserveToken(TokenSourceCache)
	m.ObserveSecretWriteFailure()
	m.ObserveLookup("agent_runtime", nil)
	m.ObserveLookup("gateway", errors.New("boom"))
	m.ObserveProbe("search", 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("basic", OutcomeResolved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("agentcore gateway", OutcomeFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.KeyCollisions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TokenRequests.WithLabelValues(TokenSourceCache)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SecretWriteFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ControlPlaneLookups.WithLabelValues("gateway", "error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ProbeToolsDiscovered.WithLabelValues("search")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveResolution("basic", OutcomeResolved)
		m.ObserveKeyCollision()
		m.ObserveToken(TokenSourceIdentity)
		m.ObserveSecretWriteFailure()
		m.ObserveLookup("gateway", nil)
		m.ObserveProbe("search", 1)
	})
}

func TestHTTPMiddlewareAndHandler(t *testing.T) {
	m := NewMetrics(logger.NewNopLogger())

	handler := m.HTTPMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("404")))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `agentcore_mcp_http_responses_total{code="200"} 3`), text)
	assert.True(t, strings.Contains(text, "agentcore_mcp_http_request_duration_seconds_count 4"), text)
}
