// Package initcmd implements the `prj project init` command.
package initcmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/go-ports/prj/cmd/prj/shared"
	"github.com/go-ports/prj/internal/project"
)

// Command implements `prj project init`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	id    string
	force bool
}

// New creates the init command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "init",
		Short: "Create the project homes and persist a project id",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.id, "id", "", "Project id to persist (default: a generated id)")
	f.BoolVar(&c.force, "force", false, "Overwrite an existing prj_id file")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	if c.id != "" && !project.ValidID(c.id) {
		return fmt.Errorf("init: %w: %q", project.ErrInvalidID, c.id)
	}

	// The existing prj_id may be malformed; --force must still replace it.
	p, err := c.ctx.Locate(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	for _, dir := range []*string{p.ConfigHome, p.DataHome, p.CacheHome} {
		if err := os.MkdirAll(*dir, 0o755); err != nil {
			return fmt.Errorf("init: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	idPath := filepath.Join(*p.ConfigHome, project.IDFile)
	if _, err := os.Stat(idPath); err == nil && !c.force {
		fmt.Fprintf(out, "Project id already exists at %s\n", idPath)
		fmt.Fprintln(out, "Use --force to overwrite.")
		return nil
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("init: %w", err)
	}

	id := c.id
	if id == "" {
		id = NewID()
	}
	if err := os.WriteFile(idPath, []byte(id+"\n"), 0o644); err != nil { //nolint:gosec // the id is not a secret
		return fmt.Errorf("init: %w", err)
	}

	root, _ := p.Root()
	fmt.Fprintf(out, "Project initialized at %s\n", root)
	fmt.Fprintf(out, "Project id: %s\n", id)
	return nil
}

// NewID returns a random 32 character id: a UUIDv4 without dashes.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
