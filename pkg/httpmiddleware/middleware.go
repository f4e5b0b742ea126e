// Package httpmiddleware assembles the chi middleware stack shared by the
// HTTP API.
package httpmiddleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/secure"

	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
)

// Config holds configuration for HTTP middleware application.
// Use DefaultConfig() for sensible defaults, then customize as needed.
type Config struct {
	// Logger logs requests and assigns correlation IDs
	Logger logger.Logger

	// Metrics is optional, e.g. (*metrics.Metrics).HTTPMiddleware()
	Metrics func(http.Handler) http.Handler

	CORS     *CORSConfig
	Security *secure.Options
	Timeout  time.Duration

	// MaxBodyBytes caps request bodies; 0 disables the limit
	MaxBodyBytes int64

	EnableRecovery bool
	EnableCORS     bool
	EnableSecurity bool
	EnableRealIP   bool
	EnableTimeout  bool
}

// DefaultConfig returns the stack used by the API server.
func DefaultConfig() Config {
	corsConfig := DefaultCORSConfig()
	return Config{
		CORS:         &corsConfig,
		Timeout:      60 * time.Second,
		MaxBodyBytes: 1 << 20,

		EnableRecovery: true,
		EnableCORS:     true,
		EnableSecurity: true,
		EnableRealIP:   true,
		EnableTimeout:  true,
	}
}

// Apply installs the middleware on router, outermost first:
//
//	Security, RealIP, Logger (assigns X-Correlation-ID), Metrics, Recovery,
//	CORS, Timeout, MaxBodyBytes
func Apply(router chi.Router, config Config) {
	if config.EnableSecurity {
		router.Use(Security(config.Security))
	}
	if config.EnableRealIP {
		router.Use(middleware.RealIP)
	}
	if config.Logger != nil {
		router.Use(config.Logger.HTTPMiddleware)
	}
	if config.Metrics != nil {
		router.Use(config.Metrics)
	}
	if config.EnableRecovery {
		router.Use(Recovery(config.Logger))
	}
	if config.EnableCORS && config.CORS != nil {
		router.Use(CORS(*config.CORS))
	}
	if config.EnableTimeout && config.Timeout > 0 {
		router.Use(middleware.Timeout(config.Timeout))
	}
	if config.MaxBodyBytes > 0 {
		router.Use(MaxBodyBytes(config.MaxBodyBytes))
	}
}

// MaxBodyBytes rejects request bodies larger than n. Handlers see the limit as
// a read error of type *http.MaxBytesError.
func MaxBodyBytes(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
