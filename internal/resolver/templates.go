package resolver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lewisedginton/agentcore_mcp/internal/controlplane"
	"github.com/lewisedginton/agentcore_mcp/internal/credentials"
	"github.com/lewisedginton/agentcore_mcp/internal/projectconfig"
	"github.com/lewisedginton/agentcore_mcp/internal/userconfig"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
	"github.com/lewisedginton/agentcore_mcp/pkg/metrics"
)

// Selectable server names.
const (
	ServerBasic              = "basic"
	ServerUseAWSDocker       = "use_aws (docker)"
	ServerUseAWSRuntime      = "use_aws (runtime)"
	ServerKBRetrieverDocker  = "kb-retriever (docker)"
	ServerKBRetrieverRuntime = "kb-retriever (runtime)"
	ServerGateway            = "agentcore gateway"
	ServerUserDefined        = "사용자 설정"
	ServerCustom             = "custom"
)

// Entry is one resolved server.
type Entry struct {
	Key       string
	Transport ServerTransportConfig
}

// template turns a server name into entries.
type template interface {
	Resolve(ctx context.Context, env *env) ([]Entry, error)
}

// errOmit marks failures that drop the entry without failing the resolution.
type errOmit struct {
	err error
}

func (e *errOmit) Error() string { return e.err.Error() }
func (e *errOmit) Unwrap() error { return e.err }

func omit(format string, args ...any) error {
	return &errOmit{err: fmt.Errorf(format, args...)}
}

// env is what a template may use during one resolution.
type env struct {
	r       *Resolver
	session *Session
	log     logger.Logger

	project *projectconfig.Project
}

func (e *env) loadProject() (*projectconfig.Project, error) {
	if e.project != nil {
		return e.project, nil
	}
	if e.r.project == nil {
		return nil, fmt.Errorf("%w: no project config", projectconfig.ErrConfigurationMissing)
	}
	p, err := e.r.project.Load()
	if err != nil {
		return nil, err
	}
	e.project = p
	return p, nil
}

// bearer returns the auth headers for the project's secret.
func (e *env) bearer(ctx context.Context, p *projectconfig.Project) (map[string]string, error) {
	if e.r.tokens == nil {
		return nil, omit("%w: no credential provider configured", credentials.ErrCredentialUnavailable)
	}
	token, cached, err := e.session.token(ctx, e.r.tokens, p.CredentialContext())
	if err != nil {
		if errors.Is(err, projectconfig.ErrConfigurationMissing) {
			return nil, err
		}
		return nil, &errOmit{err: err}
	}
	if cached {
		e.r.metrics.ObserveToken(metrics.TokenSourceSession)
	}
	return credentials.AuthHeaders(token), nil
}

type localProcess struct {
	key string
}

func (t localProcess) Resolve(_ context.Context, e *env) ([]Entry, error) {
	opts := e.r.opts
	return []Entry{{
		Key: t.key,
		Transport: ProcessTransport{
			Command: opts.PythonCommand,
			Args:    []string{filepath.Join(opts.WorkDir, opts.BasicScript)},
		},
	}}, nil
}

type dockerHTTP struct {
	key string
}

func (t dockerHTTP) Resolve(_ context.Context, e *env) ([]Entry, error) {
	return []Entry{{Key: t.key, Transport: HTTPTransport{URL: e.r.opts.DockerURL}}}, nil
}

type managedRuntimeHTTP struct {
	key  string
	tool string
}

func (t managedRuntimeHTTP) Resolve(ctx context.Context, e *env) ([]Entry, error) {
	p, err := e.loadProject()
	if err != nil {
		return nil, err
	}
	if err := projectconfig.Require("secret_name", p.SecretName); err != nil {
		return nil, err
	}
	if e.r.control == nil {
		return nil, omit("%w: no control plane client configured", controlplane.ErrNotFound)
	}

	name := controlplane.RuntimeName(p.ProjectName, t.tool)
	arn, found, err := e.r.control.FindAgentRuntimeARN(ctx, name)
	if err != nil {
		return nil, &errOmit{err: err}
	}
	if !found {
		return nil, omit("agent runtime %q: %w", name, controlplane.ErrNotFound)
	}

	headers, err := e.bearer(ctx, p)
	if err != nil {
		return nil, err
	}
	return []Entry{{
		Key:       t.key,
		Transport: HTTPTransport{URL: controlplane.RuntimeInvocationURL(p.Region, arn), Headers: headers},
	}}, nil
}

type gatewayHTTP struct {
	key string
}

func (t gatewayHTTP) Resolve(ctx context.Context, e *env) ([]Entry, error) {
	p, err := e.loadProject()
	if err != nil {
		return nil, err
	}
	if err := projectconfig.Require("secret_name", p.SecretName); err != nil {
		return nil, err
	}

	url, err := t.gatewayURL(ctx, e, p)
	if err != nil {
		return nil, err
	}
	headers, err := e.bearer(ctx, p)
	if err != nil {
		return nil, err
	}
	return []Entry{{Key: t.key, Transport: HTTPTransport{URL: url, Headers: headers}}}, nil
}

func (t gatewayHTTP) gatewayURL(ctx context.Context, e *env, p *projectconfig.Project) (string, error) {
	if e.session.gatewayURL != "" {
		return e.session.gatewayURL, nil
	}
	if e.r.control == nil {
		return "", omit("%w: no control plane client configured", controlplane.ErrNotFound)
	}

	id := p.GatewayID
	if id == "" {
		name := p.EffectiveGatewayName()
		gwID, ok, err := e.r.control.FindGatewayID(ctx, name)
		if err != nil {
			return "", &errOmit{err: err}
		}
		if !ok {
			return "", omit("gateway %q: %w", name, controlplane.ErrNotFound)
		}
		id = gwID
		if err := e.r.project.SetGatewayID(ctx, id); err != nil {
			e.log.Warn("Failed to persist gateway_id", logger.ErrorField(err))
		}
		p.GatewayID = id
	}

	url, err := e.r.control.GatewayURL(ctx, id)
	if err != nil {
		return "", &errOmit{err: err}
	}
	e.session.gatewayURL = url
	return url, nil
}

type userDefined struct{}

func (userDefined) Resolve(ctx context.Context, e *env) ([]Entry, error) {
	if e.r.user == nil {
		return nil, nil
	}
	doc, err := e.r.user.Load(ctx)
	if err != nil {
		return nil, &errOmit{err: err}
	}
	names, raw, err := doc.Servers()
	if err != nil {
		return nil, &errOmit{err: err}
	}
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Key: name, Transport: RawTransport(raw[name])})
	}
	return entries, nil
}

var _ UserConfigSource = (*userconfig.Store)(nil)
