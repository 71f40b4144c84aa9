// Package mcpcmd implements the `prj mcp` command.
package mcpcmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/prj/cmd/prj/shared"
	internalmcp "github.com/go-ports/prj/internal/mcp"
)

// Command implements `prj mcp`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the mcp command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "mcp",
		Short: "Start the prj MCP server (stdio transport)",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	r, err := c.ctx.Resolver(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return internalmcp.Serve(cmd.Context(), r)
}
