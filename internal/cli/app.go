// Package cli implements the mcpctl commands.
package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
)

const serviceName = "mcpctl"

// Version is stamped at build time.
var Version = "dev"

// NewApp builds the mcpctl application.
func NewApp() *cli.App {
	return &cli.App{
		Name:    serviceName,
		Usage:   "Resolve MCP server configurations for Bedrock AgentCore deployments",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "json",
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "config-file",
				Value:   "",
				Usage:   "Path to YAML configuration file",
				EnvVars: []string{"CONFIG_FILE"},
			},
			&cli.StringFlag{
				Name:  "project-config",
				Usage: "Path to the deployment's config.json (overrides PROJECT_CONFIG_PATH)",
			},
		},
		Before: func(ctx *cli.Context) error {
			// Initialize global logger from flags
			log := logger.NewLogger(logger.Config{
				Level:   logger.ParseLevel(ctx.String("log-level")),
				Format:  ctx.String("log-format"),
				Service: serviceName,
				Output:  ctx.App.ErrWriter,
			})

			// Store logger in context for commands to use
			ctx.App.Metadata = map[string]interface{}{
				"logger": log,
			}
			return nil
		},
		Commands: []*cli.Command{
			ResolveCommand(),
			ServersCommand(),
			TokenCommand(),
			ProbeCommand(),
			UserConfigCommand(),
			ConfigCommand(),
			ServeCommand(),
		},
	}
}
