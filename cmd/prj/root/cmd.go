// Package rootcmd wires the root cobra.Command for the prj CLI binary.
package rootcmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/go-ports/prj/cmd/prj/config"
	mcpcmd "github.com/go-ports/prj/cmd/prj/mcp"
	projectcmd "github.com/go-ports/prj/cmd/prj/project"
	"github.com/go-ports/prj/cmd/prj/shared"
	versioncmd "github.com/go-ports/prj/cmd/prj/version"
	"github.com/go-ports/prj/internal/buildinfo"
)

// New creates and returns the root cobra.Command for the prj CLI.
func New() *cobra.Command {
	return NewWithContext(&shared.Context{})
}

// NewWithContext creates the root command around an existing context, which
// lets callers substitute the environment view.
func NewWithContext(ctx *shared.Context) *cobra.Command {
	root := &cobra.Command{
		Use:           "prj",
		Short:         "prj — project base directories for tools and scripts",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	f := root.PersistentFlags()
	f.StringVar(&ctx.ConfigPath, "config", "",
		"Settings file (default: $XDG_CONFIG_HOME/prj/config.yaml)")
	f.StringVar(&ctx.LogLevel, "log-level", "",
		"Log level: debug | info | warn | error (default from settings: warn)")
	f.StringVar(&ctx.LogFormat, "log-format", "",
		"Log format: console | json (default from settings: console)")
	f.StringVarP(&ctx.Directory, "directory", "C", "",
		"Resolve the project from this directory instead of the working directory")

	root.AddCommand(
		projectcmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
		mcpcmd.New(ctx).Cmd(),
		versioncmd.New(ctx).Cmd(),
	)

	return root
}
