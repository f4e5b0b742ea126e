package cli

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lewisedginton/agentcore_mcp/internal/probe"
	"github.com/lewisedginton/agentcore_mcp/internal/resolver"
)

// ProbeCommand resolves servers, connects to each and lists its tools.
func ProbeCommand() *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Connect to the selected MCP servers and list their tools",
		Flags: []cli.Flag{
			serverFlag(),
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per-server connect and listing timeout (default from config)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print results as JSON",
			},
		},
		Action: probeAction,
	}
}

func probeAction(ctx *cli.Context) error {
	rt, err := newRuntime(ctx, resolver.RequiresAWS(ctx.StringSlice("server")))
	if err != nil {
		return err
	}
	doc, err := rt.resolve(ctx, ctx.StringSlice("server"))
	if err != nil {
		return err
	}

	timeout := rt.cfg.MCP.ProbeTimeout
	if ctx.IsSet("timeout") {
		timeout = ctx.Duration("timeout")
	}
	prober := probe.New(rt.log, probe.WithTimeout(timeout), probe.WithMetrics(rt.metrics))
	results := prober.Probe(ctx.Context, doc)

	if ctx.Bool("json") {
		return printJSON(ctx.App.Writer, results)
	}

	w := ctx.App.Writer
	if len(results) == 0 {
		fmt.Fprintln(w, "No MCP servers resolved")
		return nil
	}
	for _, res := range results {
		if !res.OK() {
			fmt.Fprintf(w, "FAIL %s (%s): %s\n", res.Server, res.Transport, res.Error)
			continue
		}
		fmt.Fprintf(w, "OK   %s (%s): %d tools in %s\n", res.Server, res.Transport, len(res.Tools), res.Duration.Round(time.Millisecond))
		for _, tool := range res.Tools {
			if tool.Description == "" {
				fmt.Fprintf(w, "     - %s\n", tool.Name)
			} else {
				fmt.Fprintf(w, "     - %s: %s\n", tool.Name, tool.Description)
			}
		}
	}
	return nil
}
