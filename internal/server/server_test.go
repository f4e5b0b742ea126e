package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lewisedginton/agentcore_mcp/internal/projectconfig"
	"github.com/lewisedginton/agentcore_mcp/internal/resolver"
	"github.com/lewisedginton/agentcore_mcp/internal/storage_manager"
	"github.com/lewisedginton/agentcore_mcp/internal/userconfig"
	pkgconfig "github.com/lewisedginton/agentcore_mcp/pkg/config"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
	"github.com/lewisedginton/agentcore_mcp/pkg/metrics"
)

type fakeResolver struct {
	doc   resolver.Document
	diags []resolver.Diagnostic
	err   error
	names []string
}

func (f *fakeResolver) Resolve(_ context.Context, session *resolver.Session, names []string) (resolver.Document, []resolver.Diagnostic, error) {
	if session == nil {
		return resolver.Document{}, nil, errors.New("no session")
	}
	f.names = names
	return f.doc, f.diags, f.err
}

type fakeProject struct {
	err error
}

func (f fakeProject) Load() (*projectconfig.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &projectconfig.Project{}, nil
}

type testEnv struct {
	server   *Server
	resolver *fakeResolver
	dir      string
	metrics  *metrics.Metrics
}

func newTestEnv(t *testing.T, project ProjectLoader) *testEnv {
	t.Helper()
	dir := t.TempDir()
	log := logger.NewNopLogger()
	m := metrics.NewMetrics(log)
	res := &fakeResolver{}

	s := New(Config{
		HTTP: pkgconfig.HTTPServerConfig{
			Port:                8080,
			WriteTimeoutSeconds: 10,
			MaxRequestBytes:     1024,
			CORSAllowedOrigins:  []string{"http://localhost:8501"},
		},
		Enabled: func(name string) bool { return name != resolver.ServerGateway },
	}, Deps{
		Resolver:   res,
		UserConfig: userconfig.NewStore(storage_manager.NewLocalFileProvider(dir), "", log),
		Project:    project,
		Metrics:    m,
		Log:        log,
	})
	return &testEnv{server: s, resolver: res, dir: dir, metrics: m}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestListServers(t *testing.T) {
	env := newTestEnv(t, fakeProject{})
	rec := env.do(http.MethodGet, "/v1/servers", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listServersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Servers, len(resolver.KnownServers()))
	for _, s := range resp.Servers {
		assert.Equal(t, s.Name != resolver.ServerGateway, s.Enabled, s.Name)
	}
}

func TestResolveEndpoint(t *testing.T) {
	t.Run("returns document and diagnostics", func(t *testing.T) {
		env := newTestEnv(t, fakeProject{})
		env.resolver.doc = resolver.Document{MCPServers: resolver.ServerConfigSet{
			"search": resolver.ProcessTransport{Command: "python", Args: []string{"mcp_server_basic.py"}},
		}}
		env.resolver.diags = []resolver.Diagnostic{{Server: "nope", Kind: resolver.DiagUnknown, Message: "unknown server"}}

		rec := env.do(http.MethodPost, "/v1/resolve", `{"servers": ["basic", "nope"]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"basic", "nope"}, env.resolver.names)
		assert.JSONEq(t, `{
			"mcpServers": {"search": {"command": "python", "args": ["mcp_server_basic.py"]}},
			"diagnostics": [{"server": "nope", "kind": "unknown_server", "message": "unknown server"}]
		}`, rec.Body.String())
	})

	t.Run("empty result is an empty object", func(t *testing.T) {
		env := newTestEnv(t, fakeProject{})
		rec := env.do(http.MethodPost, "/v1/resolve", `{"servers": []}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"mcpServers": {}}`, rec.Body.String())
	})

	t.Run("configuration missing is 422", func(t *testing.T) {
		env := newTestEnv(t, fakeProject{})
		env.resolver.err = &projectconfig.MissingKeyError{Key: "secret_name"}

		rec := env.do(http.MethodPost, "/v1/resolve", `{"servers": ["agentcore gateway"]}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "secret_name", resp.Key)
	})

	t.Run("other failures are 500", func(t *testing.T) {
		env := newTestEnv(t, fakeProject{})
		env.resolver.err = errors.New("config.json: invalid character")
		rec := env.do(http.MethodPost, "/v1/resolve", `{"servers": ["basic"]}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("bad request body", func(t *testing.T) {
		env := newTestEnv(t, fakeProject{})
		assert.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/v1/resolve", `{"servers": "basic"`).Code)
	})

	t.Run("oversized body", func(t *testing.T) {
		env := newTestEnv(t, fakeProject{})
		body := `{"servers": ["` + strings.Repeat("x", 2048) + `"]}`
		assert.Equal(t, http.StatusRequestEntityTooLarge, env.do(http.MethodPost, "/v1/resolve", body).Code)
	})
}

func TestUserConfigEndpoints(t *testing.T) {
	env := newTestEnv(t, fakeProject{})

	rec := env.do(http.MethodGet, "/v1/user-config", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	body := `{"mcpServers": {"날씨": {"command": "npx", "args": ["weather<mcp>"]}}}`
	rec = env.do(http.MethodPut, "/v1/user-config", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, body, rec.Body.String())

	stored, err := os.ReadFile(filepath.Join(env.dir, userconfig.DefaultFileName))
	require.NoError(t, err)
	assert.Contains(t, string(stored), "날씨")
	assert.Contains(t, string(stored), "weather<mcp>")

	rec = env.do(http.MethodGet, "/v1/user-config", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, body, rec.Body.String())

	t.Run("invalid json is stored as empty", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/v1/user-config", `{"mcpServers": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid user-defined MCP config")

		rec = env.do(http.MethodGet, "/v1/user-config", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("corrupt stored document reads as empty", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(env.dir, userconfig.DefaultFileName), []byte("not json"), 0o600))
		rec := env.do(http.MethodGet, "/v1/user-config", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t, fakeProject{})
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/readyz", "").Code)

	broken := newTestEnv(t, fakeProject{err: errors.New("config.json: invalid character")})
	rec := broken.do(http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "project_config")
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, fakeProject{})
	env.do(http.MethodGet, "/v1/servers", "")

	rec := env.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `agentcore_mcp_http_responses_total{code="200"}`)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	log := logger.NewNopLogger()
	s := New(Config{HTTP: pkgconfig.HTTPServerConfig{Port: 0, WriteTimeoutSeconds: 1}}, Deps{Log: log})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()
	assert.NoError(t, <-done)
}
