package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/lewisedginton/agentcore_mcp/internal/awsclients"
	"github.com/lewisedginton/agentcore_mcp/internal/projectconfig"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
)

// ConfigCommand returns a command for configuration operations
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Configuration operations",
		Subcommands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "Validate the service configuration and the project config",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "discover",
						Usage: "Fill in naming-convention defaults and look up Cognito and account IDs",
					},
				},
				Action: configValidateAction,
			},
		},
	}
}

func configValidateAction(ctx *cli.Context) error {
	log := getLogger(ctx)
	log.Info("Validating configuration")

	rt, err := newRuntime(ctx, ctx.Bool("discover"))
	if err != nil {
		log.Error("Configuration validation failed", logger.ErrorField(err))
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if ctx.Bool("discover") {
		if err := rt.discover(ctx); err != nil {
			return err
		}
	}

	p, err := rt.project.Load()
	if err != nil {
		log.Error("Project config validation failed", logger.ErrorField(err))
		return fmt.Errorf("project config validation failed: %w", err)
	}
	if p.ProjectName == "" {
		log.Warn("Project config has no projectName, managed runtime and gateway servers cannot resolve",
			logger.StringField("path", rt.project.Path()))
	}

	rt.cfg.LogConfig(log)
	log.Info("Configuration validation passed")
	fmt.Fprintln(ctx.App.Writer, "Configuration is valid")
	return nil
}

func (rt *runtime) discover(ctx *cli.Context) error {
	var (
		disc projectconfig.Discoverer
		acct projectconfig.AccountResolver
	)
	if rt.aws != nil {
		disc = rt.cognito
		acct = awsclients.NewAccountResolver(rt.aws.STS)
	} else {
		rt.log.Warn("AWS unavailable, filling naming-convention defaults only")
	}

	changed, err := rt.project.EnsureDefaults(ctx.Context, disc, acct)
	for _, key := range changed {
		fmt.Fprintf(ctx.App.Writer, "set %s\n", key)
	}
	if err != nil {
		return fmt.Errorf("discovery incomplete: %w", err)
	}
	return nil
}
