// Package infocmd implements the `prj project info` command.
package infocmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/prj/cmd/prj/shared"
	"github.com/go-ports/prj/internal/project"
	"github.com/go-ports/prj/internal/render"
)

// Command implements `prj project info`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	format string
	query  string
	strict bool
}

// New creates the info command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "info",
		Short: "Display the project structure information",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	f := c.cmd.Flags()
	f.StringVarP(&c.format, "format", "f", "", "Output format: text | json | yaml (default from settings: text)")
	f.StringVar(&c.query, "query", "", "Print only the value selected by a JSONPath expression, e.g. $.root_directory")
	f.BoolVar(&c.strict, "strict", false, "Report only what the environment and repository provide, without defaults")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	settings, err := c.ctx.Settings()
	if err != nil {
		return err
	}
	name := c.format
	if name == "" {
		name = settings.Info.Format
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return err
	}

	var p *project.Project
	if c.strict {
		p, err = c.ctx.Discover(cmd.ErrOrStderr())
	} else {
		p, err = c.ctx.Assume(cmd.ErrOrStderr())
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if c.query != "" {
		v, err := render.Query(p, c.query)
		if err != nil {
			return err
		}
		return render.WriteValue(out, v)
	}
	return render.Write(out, p, format)
}
