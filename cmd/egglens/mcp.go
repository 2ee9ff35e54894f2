package main

import (
	"github.com/urfave/cli/v2"

	"github.com/spetersoncode/egglens/mcp"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the find_easter_eggs tool over MCP stdio",
		Action: func(c *cli.Context) error {
			rt, err := setup(c, stderr)
			if err != nil {
				return err
			}
			rt.logger.Info("mcp server starting", "tool", mcp.ToolName)
			return mcp.ServeStdio(rt.lens,
				mcp.WithName("egglens"),
				mcp.WithVersion(Version),
			)
		},
	}
}
