package cli

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/lewisedginton/agentcore_mcp/internal/credentials"
	"github.com/lewisedginton/agentcore_mcp/internal/projectconfig"
	"github.com/lewisedginton/agentcore_mcp/internal/resolver"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
)

func serverFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     "server",
		Aliases:  []string{"s"},
		Usage:    "MCP server to include; repeat for more (see 'servers')",
		Required: true,
	}
}

// ResolveCommand prints the mcpServers document for the selected servers.
func ResolveCommand() *cli.Command {
	return &cli.Command{
		Name:   "resolve",
		Usage:  "Print the mcpServers document for the selected servers",
		Flags:  []cli.Flag{serverFlag()},
		Action: resolveAction,
	}
}

func resolveAction(ctx *cli.Context) error {
	rt, err := newRuntime(ctx, resolver.RequiresAWS(ctx.StringSlice("server")))
	if err != nil {
		return err
	}
	doc, err := rt.resolve(ctx, ctx.StringSlice("server"))
	if err != nil {
		return err
	}
	return printJSON(ctx.App.Writer, doc)
}

func (rt *runtime) resolve(ctx *cli.Context, names []string) (resolver.Document, error) {
	doc, diags, err := rt.resolver.Resolve(ctx.Context, resolver.NewSession(), names)
	if err != nil {
		return resolver.Document{}, fmt.Errorf("failed to resolve MCP servers: %w", err)
	}
	for _, d := range diags {
		rt.log.Warn("MCP server not included as selected",
			logger.ServerField(d.Server),
			logger.StringField("kind", d.Kind),
			logger.StringField("reason", d.Message))
	}
	return doc, nil
}

// ServersCommand lists the selectable server names.
func ServersCommand() *cli.Command {
	return &cli.Command{
		Name:  "servers",
		Usage: "List the selectable MCP server names",
		Action: func(ctx *cli.Context) error {
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			for _, name := range resolver.KnownServers() {
				if cfg.MCP.ServerEnabled(name) {
					fmt.Fprintln(ctx.App.Writer, name)
				} else {
					fmt.Fprintf(ctx.App.Writer, "%s\t(disabled)\n", name)
				}
			}
			return nil
		},
	}
}

// TokenCommand prints the bearer token for the project's secret.
func TokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Print the bearer token used for authenticated MCP servers",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "refresh",
				Usage: "Ignore the cached token and sign in again",
			},
			&cli.BoolFlag{
				Name:  "header",
				Usage: "Print the Authorization header value instead of the bare token",
			},
		},
		Action: tokenAction,
	}
}

func tokenAction(ctx *cli.Context) error {
	rt, err := newRuntime(ctx, true)
	if err != nil {
		return err
	}
	if rt.tokens == nil {
		return errors.New("AWS is not configured: set region in the project config or aws.region")
	}
	p, err := rt.project.Load()
	if err != nil {
		return err
	}

	cc := projectconfig.WithDefaultSecret(p.CredentialContext())
	if cc.Region == "" {
		cc.Region = rt.region()
	}

	var token string
	if ctx.Bool("refresh") {
		token, err = rt.tokens.Refresh(ctx.Context, cc)
	} else {
		token, err = rt.tokens.GetToken(ctx.Context, cc)
	}
	if err != nil {
		return err
	}

	if ctx.Bool("header") {
		token = credentials.AuthorizationValue(token)
	}
	fmt.Fprintln(ctx.App.Writer, token)
	return nil
}
