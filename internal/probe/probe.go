// Package probe connects to resolved MCP servers and lists their tools.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"sort"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lewisedginton/agentcore_mcp/internal/resolver"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
	"github.com/lewisedginton/agentcore_mcp/pkg/metrics"
)

const defaultTimeout = 30 * time.Second

// ErrUnsupportedTransport is reported for entries the probe cannot dial.
var ErrUnsupportedTransport = errors.New("unsupported transport")

// Tool is a tool advertised by a server.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Result is the outcome of probing one server.
type Result struct {
	Server    string        `json:"server"`
	Transport string        `json:"transport"`
	Tools     []Tool        `json:"tools,omitempty"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// OK reports whether the server answered.
func (r Result) OK() bool { return r.Error == "" }

// Prober dials MCP servers with the go-sdk client.
type Prober struct {
	client     *mcp.Client
	httpClient *http.Client
	timeout    time.Duration
	metrics    *metrics.Metrics
	log        logger.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithTimeout bounds each server's connect and listing. Default 30s.
func WithTimeout(d time.Duration) Option {
	return func(p *Prober) { p.timeout = d }
}

// WithHTTPClient sets the base client for HTTP servers.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Prober) { p.httpClient = c }
}

// WithMetrics records tool counts per server.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Prober) { p.metrics = m }
}

// New creates a Prober.
func New(log logger.Logger, opts ...Option) *Prober {
	p := &Prober{
		client:     mcp.NewClient(&mcp.Implementation{Name: "agentcore-mcp-probe", Version: "1.0.0"}, nil),
		httpClient: http.DefaultClient,
		timeout:    defaultTimeout,
		log:        log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe checks every server in doc, in key order. Failures are recorded in
// the results, never returned.
func (p *Prober) Probe(ctx context.Context, doc resolver.Document) []Result {
	names := make([]string, 0, len(doc.MCPServers))
	for name := range doc.MCPServers {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, p.ProbeServer(ctx, name, doc.MCPServers[name]))
	}
	return results
}

// ProbeServer connects to one server and lists its tools.
func (p *Prober) ProbeServer(ctx context.Context, name string, cfg resolver.ServerTransportConfig) Result {
	log := p.log.WithFields(logger.ServerField(name))
	start := time.Now()
	res := Result{Server: name}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	tools, kind, err := p.listTools(ctx, cfg)
	res.Transport = kind
	res.Duration = time.Since(start)
	if err != nil {
		res.Error = err.Error()
		log.Warn("MCP server probe failed", logger.ErrorField(err), logger.DurationField("duration", res.Duration))
		return res
	}

	res.Tools = make([]Tool, 0, len(tools))
	for _, t := range tools {
		res.Tools = append(res.Tools, Tool{Name: t.Name, Description: t.Description})
	}
	p.metrics.ObserveProbe(name, len(res.Tools))
	log.Info("MCP server probed",
		logger.IntField("tools", len(res.Tools)),
		logger.DurationField("duration", res.Duration))
	return res
}

func (p *Prober) listTools(ctx context.Context, cfg resolver.ServerTransportConfig) ([]*mcp.Tool, string, error) {
	transport, kind, err := p.transport(ctx, cfg)
	if err != nil {
		return nil, kind, err
	}

	session, err := p.client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, kind, fmt.Errorf("failed to connect to MCP server: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			p.log.Debug("Failed to close MCP session", logger.ErrorField(err))
		}
	}()

	var tools []*mcp.Tool
	cursor := ""
	for {
		resp, err := session.ListTools(ctx, &mcp.ListToolsParams{Cursor: cursor})
		if err != nil {
			return nil, kind, fmt.Errorf("failed to list MCP tools: %w", err)
		}
		tools = append(tools, resp.Tools...)
		if resp.NextCursor == "" {
			return tools, kind, nil
		}
		cursor = resp.NextCursor
	}
}

// rawEntry covers the user-defined shapes the probe can dial.
type rawEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
	Type    string            `json:"type"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
}

func (p *Prober) transport(ctx context.Context, cfg resolver.ServerTransportConfig) (mcp.Transport, string, error) {
	switch t := cfg.(type) {
	case resolver.ProcessTransport:
		return commandTransport(ctx, t.Command, t.Args, t.Env), "stdio", nil
	case resolver.HTTPTransport:
		return p.streamable(t.URL, t.Headers), resolver.TransportStreamableHTTP, nil
	case resolver.RawTransport:
		var e rawEntry
		if err := json.Unmarshal(t, &e); err != nil {
			return nil, "unknown", fmt.Errorf("%w: %v", ErrUnsupportedTransport, err)
		}
		switch {
		case e.Command != "":
			return commandTransport(ctx, e.Command, e.Args, e.Env), "stdio", nil
		case e.URL != "" && e.Type == "sse":
			return &mcp.SSEClientTransport{Endpoint: e.URL, HTTPClient: p.withHeaders(e.Headers)}, "sse", nil
		case e.URL != "" && (e.Type == "" || e.Type == resolver.TransportStreamableHTTP || e.Type == "http"):
			return p.streamable(e.URL, e.Headers), resolver.TransportStreamableHTTP, nil
		}
		return nil, e.Type, fmt.Errorf("%w: type %q", ErrUnsupportedTransport, e.Type)
	default:
		return nil, "unknown", fmt.Errorf("%w: %T", ErrUnsupportedTransport, cfg)
	}
}

func (p *Prober) streamable(url string, headers map[string]string) mcp.Transport {
	return &mcp.StreamableClientTransport{Endpoint: url, HTTPClient: p.withHeaders(headers)}
}

func (p *Prober) withHeaders(headers map[string]string) *http.Client {
	if len(headers) == 0 {
		return p.httpClient
	}
	c := *p.httpClient
	c.Transport = newHeaderRoundTripper(headers, p.httpClient.Transport)
	return &c
}

func commandTransport(ctx context.Context, command string, args []string, env map[string]string) mcp.Transport {
	cmd := exec.CommandContext(ctx, command, args...)
	if len(env) > 0 {
		cmd.Env = os.Environ()
		for key, value := range env {
			cmd.Env = append(cmd.Env, key+"="+value)
		}
	}
	return &mcp.CommandTransport{Command: cmd}
}
