// Package genenvcmd implements the `prj project generate-env` command.
package genenvcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/prj/cmd/prj/shared"
	"github.com/go-ports/prj/internal/envexport"
)

// Command implements `prj project generate-env`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	export    bool
	outputDir string
}

// New creates the generate-env command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "generate-env",
		Short: "Export the project as environment variables",
		Long: "Export the project as environment variables.\n\n" +
			"Without --output-dir, prints KEY=VALUE lines suitable for eval or an env file.\n" +
			"With --output-dir, writes one file per variable, named after the variable.",
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	f := c.cmd.Flags()
	f.BoolVar(&c.export, "export", false, `Prefix each line with "export " (default from settings: false)`)
	f.StringVarP(&c.outputDir, "output-dir", "o", "", "Write one file per variable into this directory")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	settings, err := c.ctx.Settings()
	if err != nil {
		return err
	}
	export := settings.Env.Export
	if cmd.Flags().Changed("export") {
		export = c.export
	}

	p, err := c.ctx.Assume(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	vars := p.Vars()
	if c.outputDir != "" {
		if err := envexport.WriteDir(c.outputDir, vars); err != nil {
			return fmt.Errorf("generate-env: %w", err)
		}
		return nil
	}
	if err := envexport.WriteLines(cmd.OutOrStdout(), vars, export); err != nil {
		return fmt.Errorf("generate-env: %w", err)
	}
	return nil
}
