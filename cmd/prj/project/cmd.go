// Package projectcmd implements the `prj project` command group.
package projectcmd

import (
	"github.com/spf13/cobra"

	execcmd "github.com/go-ports/prj/cmd/prj/project/exec"
	genenvcmd "github.com/go-ports/prj/cmd/prj/project/genenv"
	infocmd "github.com/go-ports/prj/cmd/prj/project/info"
	initcmd "github.com/go-ports/prj/cmd/prj/project/init"
	"github.com/go-ports/prj/cmd/prj/shared"
)

// Command implements `prj project`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the project command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "project",
		Short: "Work with the project resolved from the current directory",
		RunE:  func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}
	c.cmd.AddCommand(
		execcmd.New(ctx).Cmd(),
		infocmd.New(ctx).Cmd(),
		genenvcmd.New(ctx).Cmd(),
		initcmd.New(ctx).Cmd(),
	)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }
