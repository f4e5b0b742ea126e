// Package resolver turns selected MCP server names into the mcpServers
// document an agent framework consumes.
package resolver

import (
	"context"
	"errors"

	"github.com/lewisedginton/agentcore_mcp/internal/credentials"
	"github.com/lewisedginton/agentcore_mcp/internal/projectconfig"
	"github.com/lewisedginton/agentcore_mcp/internal/userconfig"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
	"github.com/lewisedginton/agentcore_mcp/pkg/metrics"
)

// TokenSource returns bearer tokens without the "Bearer " prefix.
type TokenSource interface {
	GetToken(ctx context.Context, cc credentials.CredentialContext) (string, error)
}

// ControlPlane locates AgentCore runtimes and gateways.
type ControlPlane interface {
	FindAgentRuntimeARN(ctx context.Context, name string) (string, bool, error)
	FindGatewayID(ctx context.Context, name string) (string, bool, error)
	GatewayURL(ctx context.Context, gatewayID string) (string, error)
}

// ProjectStore reads config.json and records discovered IDs.
type ProjectStore interface {
	Load() (*projectconfig.Project, error)
	SetGatewayID(ctx context.Context, gatewayID string) error
}

// UserConfigSource supplies the user-defined server document.
type UserConfigSource interface {
	Load(ctx context.Context) (userconfig.Document, error)
}

// Options are the local settings templates need.
type Options struct {
	PythonCommand string
	WorkDir       string
	BasicScript   string
	DockerURL     string
	// Enabled filters selectable names; nil allows all
	Enabled func(name string) bool
}

// Diagnostic explains why a selected server produced no entry, or what it
// overwrote.
type Diagnostic struct {
	Server  string `json:"server"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Diagnostic kinds.
const (
	DiagUnknown   = "unknown_server"
	DiagDisabled  = "disabled"
	DiagOmitted   = "omitted"
	DiagCollision = "key_collision"
)

// Resolver maps server names to transports.
type Resolver struct {
	opts      Options
	project   ProjectStore
	tokens    TokenSource
	control   ControlPlane
	user      UserConfigSource
	metrics   *metrics.Metrics
	log       logger.Logger
	templates map[string]template
}

// Deps are the resolver's collaborators. Tokens and Control may be nil when
// AWS is unavailable; authenticated servers are then omitted.
type Deps struct {
	Project ProjectStore
	Tokens  TokenSource
	Control ControlPlane
	User    UserConfigSource
	Metrics *metrics.Metrics
	Log     logger.Logger
}

// New builds a Resolver with the standard template table.
func New(opts Options, deps Deps) *Resolver {
	if opts.PythonCommand == "" {
		opts.PythonCommand = "python"
	}
	if opts.BasicScript == "" {
		opts.BasicScript = "mcp_server_basic.py"
	}
	if opts.DockerURL == "" {
		opts.DockerURL = "http://127.0.0.1:8000/mcp"
	}
	log := deps.Log
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Resolver{
		opts:    opts,
		project: deps.Project,
		tokens:  deps.Tokens,
		control: deps.Control,
		user:    deps.User,
		metrics: deps.Metrics,
		log:     log,
		templates: map[string]template{
			ServerBasic:              localProcess{key: "search"},
			ServerUseAWSDocker:       dockerHTTP{key: "use_aws"},
			ServerKBRetrieverDocker:  dockerHTTP{key: "kb-retriever"},
			ServerUseAWSRuntime:      managedRuntimeHTTP{key: "use_aws", tool: "use_aws"},
			ServerKBRetrieverRuntime: managedRuntimeHTTP{key: "kb-retriever", tool: "kb-retriever"},
			ServerGateway:            gatewayHTTP{key: "agentcore-gateway"},
			ServerUserDefined:        userDefined{},
			ServerCustom:             userDefined{},
		},
	}
}

// KnownServers lists the selectable names in display order.
func KnownServers() []string {
	return []string{
		ServerBasic,
		ServerUseAWSDocker,
		ServerUseAWSRuntime,
		ServerKBRetrieverDocker,
		ServerKBRetrieverRuntime,
		ServerGateway,
		ServerUserDefined,
	}
}

// RequiresAWS reports whether any of names resolves through the AgentCore
// control plane and a bearer token.
func RequiresAWS(names []string) bool {
	for _, name := range names {
		switch name {
		case ServerUseAWSRuntime, ServerKBRetrieverRuntime, ServerGateway:
			return true
		}
	}
	return false
}

// Resolve runs the template for each name in order and merges the entries,
// later keys overwriting earlier ones. A missing config.json key aborts the
// resolution; other failures omit the server and are reported as diagnostics.
func (r *Resolver) Resolve(ctx context.Context, session *Session, names []string) (Document, []Diagnostic, error) {
	if session == nil {
		session = NewSession()
	}
	e := &env{r: r, session: session, log: r.log}
	set := make(ServerConfigSet)
	var diags []Diagnostic

	for _, name := range names {
		log := r.log.WithFields(logger.ServerField(name))

		tmpl, ok := r.templates[name]
		if !ok {
			log.Warn("Unknown MCP server selected, skipping")
			r.metrics.ObserveResolution(name, metrics.OutcomeSkipped)
			diags = append(diags, Diagnostic{Server: name, Kind: DiagUnknown, Message: "unknown server"})
			continue
		}
		if r.opts.Enabled != nil && !r.opts.Enabled(name) {
			log.Warn("MCP server disabled by configuration, skipping")
			r.metrics.ObserveResolution(name, metrics.OutcomeSkipped)
			diags = append(diags, Diagnostic{Server: name, Kind: DiagDisabled, Message: "server disabled"})
			continue
		}

		e.log = log
		entries, err := tmpl.Resolve(ctx, e)
		if err != nil {
			var o *errOmit
			r.metrics.ObserveResolution(name, metrics.OutcomeFailed)
			if !errors.As(err, &o) {
				log.Error("MCP server resolution failed", logger.ErrorField(err))
				return Document{}, diags, err
			}
			log.Warn("MCP server omitted", logger.ErrorField(o.err))
			diags = append(diags, Diagnostic{Server: name, Kind: DiagOmitted, Message: o.err.Error()})
			continue
		}

		for _, entry := range entries {
			if _, exists := set[entry.Key]; exists {
				log.Warn("MCP server key overwritten by later selection", logger.StringField("key", entry.Key))
				r.metrics.ObserveKeyCollision()
				diags = append(diags, Diagnostic{Server: name, Kind: DiagCollision, Message: "overwrote key " + entry.Key})
			}
			set[entry.Key] = entry.Transport
		}
		r.metrics.ObserveResolution(name, metrics.OutcomeResolved)
		log.Debug("MCP server resolved", logger.IntField("entries", len(entries)))
	}

	return Document{MCPServers: set}, diags, nil
}
