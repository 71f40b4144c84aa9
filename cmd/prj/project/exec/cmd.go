// Package execcmd implements the `prj project exec` command.
package execcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/prj/cmd/prj/shared"
	"github.com/go-ports/prj/internal/runner"
)

// Command implements `prj project exec`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the exec command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run a command in the project's root directory",
		Long: "Run a command in the project's root directory.\n\n" +
			"Standard streams are inherited and the command's exit code becomes prj's exit code.",
		Args: cobra.MinimumNArgs(1),
		RunE: c.run,
	}
	// Everything after the command name belongs to the command.
	c.cmd.Flags().SetInterspersed(false)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	p, err := c.ctx.Assume(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	root, ok := p.Root()
	if !ok {
		return fmt.Errorf("exec: %w", runner.ErrNoRoot)
	}

	if logger, err := c.ctx.Logger(cmd.ErrOrStderr()); err == nil {
		logger.Sugar().Debugw("running command in project", "root", root, "command", args[0], "args", args[1:])
	}

	return runner.Run(root, args[0], args[1:], runner.Stdio{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})
}
