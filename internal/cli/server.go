package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/lewisedginton/agentcore_mcp/internal/server"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
	"github.com/lewisedginton/agentcore_mcp/pkg/metrics"
	"github.com/lewisedginton/agentcore_mcp/pkg/utils"
)

// ServeCommand starts the HTTP API.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the HTTP API",
		Action: serveAction,
	}
}

func serveAction(ctx *cli.Context) error {
	rt, err := newRuntime(ctx, true)
	if err != nil {
		return err
	}
	log := rt.log
	cfg := rt.cfg
	cfg.LogConfig(log)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = rt.metrics
	}
	srv := server.New(server.Config{
		HTTP:                   cfg.HTTP,
		HealthTimeout:          cfg.Health.Timeout,
		HealthFailureThreshold: cfg.Health.FailureThreshold,
		Enabled:                cfg.MCP.ServerEnabled,
	}, server.Deps{
		Resolver:   rt.resolver,
		UserConfig: rt.userConfig,
		Project:    rt.project,
		Metrics:    m,
		Log:        log,
	})

	runCtx, cancel := context.WithCancel(ctx.Context)
	defer cancel()

	serverErrs := make(chan error, 1)
	go func() {
		defer close(serverErrs)
		if err := srv.Run(runCtx); err != nil {
			serverErrs <- err
		}
	}()
	var metricsErrs <-chan error
	if m != nil && cfg.Metrics.Port != 0 {
		metricsErrs = m.Listen(runCtx, cfg.Metrics.Port)
	}
	mergedErrChan := utils.MergeErrorChans(serverErrs, metricsErrs)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	drain := func() {
		cancel()
		for err := range mergedErrChan {
			log.Error("Error during shutdown", logger.ErrorField(err))
		}
	}

	select {
	case sig := <-sigChan:
		log.Info("Received shutdown signal", logger.StringField("signal", sig.String()))
		drain()
		log.Info("Server exited gracefully")
	case <-ctx.Context.Done():
		drain()
		log.Info("Server exited gracefully")
	case err, ok := <-mergedErrChan:
		if ok {
			log.Error("Fatal server error occurred", logger.ErrorField(err))
			go drain()
			return fmt.Errorf("server error: %w", err)
		}
		log.Info("Server exited normally")
	}
	return nil
}
