// Package server exposes the resolver over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lewisedginton/agentcore_mcp/internal/projectconfig"
	"github.com/lewisedginton/agentcore_mcp/internal/resolver"
	"github.com/lewisedginton/agentcore_mcp/internal/userconfig"
	pkgconfig "github.com/lewisedginton/agentcore_mcp/pkg/config"
	"github.com/lewisedginton/agentcore_mcp/pkg/health"
	"github.com/lewisedginton/agentcore_mcp/pkg/httpmiddleware"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
	"github.com/lewisedginton/agentcore_mcp/pkg/metrics"
)

const shutdownTimeout = 5 * time.Second

// Resolver resolves server names for one request.
type Resolver interface {
	Resolve(ctx context.Context, session *resolver.Session, names []string) (resolver.Document, []resolver.Diagnostic, error)
}

// UserConfigStore reads and replaces the user-defined document.
type UserConfigStore interface {
	Load(ctx context.Context) (userconfig.Document, error)
	SetRaw(ctx context.Context, data []byte) (userconfig.Document, error)
}

// ProjectLoader reads config.json.
type ProjectLoader interface {
	Load() (*projectconfig.Project, error)
}

// Config holds the listener and health settings.
type Config struct {
	HTTP pkgconfig.HTTPServerConfig

	HealthTimeout          time.Duration
	HealthFailureThreshold int

	// Enabled reports whether a server name may be selected; nil allows all
	Enabled func(name string) bool
}

// Deps are the collaborators the handlers call.
type Deps struct {
	Resolver   Resolver
	UserConfig UserConfigStore
	Project    ProjectLoader
	Metrics    *metrics.Metrics
	Log        logger.Logger
}

// Server is the HTTP API.
type Server struct {
	cfg     Config
	deps    Deps
	log     logger.Logger
	health  *health.Checker
	handler http.Handler
}

// New builds the router. It does not listen.
func New(cfg Config, deps Deps) *Server {
	log := deps.Log
	if log == nil {
		log = logger.NewNopLogger()
	}
	s := &Server{cfg: cfg, deps: deps, log: log}

	opts := []health.Option{health.WithLogger(log)}
	if cfg.HealthTimeout > 0 {
		opts = append(opts, health.WithTimeout(cfg.HealthTimeout))
	}
	if cfg.HealthFailureThreshold > 0 {
		opts = append(opts, health.WithFailureThreshold(cfg.HealthFailureThreshold))
	}
	s.health = health.New(opts...)
	if deps.Project != nil {
		s.health.AddReadinessCheck(health.NewCheckFunc("project_config", func(context.Context) error {
			_, err := deps.Project.Load()
			return err
		}))
	}

	s.handler = s.routes()
	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	mw := httpmiddleware.DefaultConfig()
	mw.Logger = s.log
	if s.deps.Metrics != nil {
		mw.Metrics = s.deps.Metrics.HTTPMiddleware()
	}
	if len(s.cfg.HTTP.CORSAllowedOrigins) > 0 {
		mw.CORS.AllowedOrigins = s.cfg.HTTP.CORSAllowedOrigins
	}
	if s.cfg.HTTP.WriteTimeoutSeconds > 0 {
		mw.Timeout = s.cfg.HTTP.WriteTimeout()
	}
	if s.cfg.HTTP.MaxRequestBytes > 0 {
		mw.MaxBodyBytes = s.cfg.HTTP.MaxRequestBytes
	}
	httpmiddleware.Apply(r, mw)

	r.Get("/healthz", s.health.LivenessHandler())
	r.Get("/readyz", s.health.ReadinessHandler())
	if s.deps.Metrics != nil {
		r.Handle("/metrics", s.deps.Metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/servers", s.handleListServers)
		r.Post("/resolve", s.handleResolve)
		r.Get("/user-config", s.handleGetUserConfig)
		r.Put("/user-config", s.handlePutUserConfig)
	})
	return r
}

// Run listens on the configured port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.HTTP.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       s.cfg.HTTP.ReadTimeout(),
		// the timeout middleware bounds handlers first
		WriteTimeout: s.cfg.HTTP.WriteTimeout() + 5*time.Second,
		IdleTimeout:  s.cfg.HTTP.IdleTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP API listening", logger.IntField("port", s.cfg.HTTP.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP API failed: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("Shutting down HTTP API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout) //nolint:contextcheck // parent is already cancelled
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil { //nolint:contextcheck // see above
		return fmt.Errorf("HTTP API shutdown: %w", err)
	}
	s.log.Info("HTTP API stopped")
	return nil
}
