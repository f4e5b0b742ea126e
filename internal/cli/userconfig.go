package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/lewisedginton/agentcore_mcp/internal/userconfig"
)

// UserConfigCommand reads and replaces the user-defined MCP document.
func UserConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "user-config",
		Usage: "Show or replace the user-defined MCP server config",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the stored document",
				Action: userConfigShowAction,
			},
			{
				Name:      "set",
				Usage:     "Replace the stored document with FILE, or stdin when FILE is -",
				ArgsUsage: "FILE|-",
				Action:    userConfigSetAction,
			},
		},
	}
}

func userConfigShowAction(ctx *cli.Context) error {
	rt, err := newRuntime(ctx, false)
	if err != nil {
		return err
	}
	doc, err := rt.userConfig.Load(ctx.Context)
	var pe *userconfig.ParseError
	if err != nil && !errors.As(err, &pe) {
		return err
	}
	data, err := userconfig.Encode(doc)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(data)
	return err
}

func userConfigSetAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one argument: FILE or -")
	}
	rt, err := newRuntime(ctx, false)
	if err != nil {
		return err
	}

	var data []byte
	if src := ctx.Args().First(); src == "-" {
		data, err = io.ReadAll(ctx.App.Reader)
	} else {
		data, err = os.ReadFile(src) //nolint:gosec // G304: operator-supplied path
	}
	if err != nil {
		return fmt.Errorf("failed to read user-defined MCP config: %w", err)
	}

	if _, err := rt.userConfig.SetRaw(ctx.Context, data); err != nil {
		var pe *userconfig.ParseError
		if errors.As(err, &pe) {
			return fmt.Errorf("stored an empty document instead: %w", err)
		}
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "Saved to %s\n", rt.userConfig.Location())
	return nil
}
