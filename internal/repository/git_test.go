//go:build !nogit

package repository_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/go-git/go-git/v5"

	"github.com/go-ports/prj/internal/project"
	"github.com/go-ports/prj/internal/repository"
)

func TestGitDiscoverRoot_HappyPath(t *testing.T) {
	c := qt.New(t)

	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	c.Assert(err, qt.IsNil)

	nested := filepath.Join(root, "a", "b")
	c.Assert(os.MkdirAll(nested, 0o755), qt.IsNil)

	cases := []struct {
		name  string
		start string
	}{
		{"from the top directory", root},
		{"from a nested directory", nested},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			got, found, err := repository.Git{}.DiscoverRoot(tc.start)
			c.Assert(err, qt.IsNil)
			c.Assert(found, qt.IsTrue)
			c.Assert(got, qt.Equals, root)
		})
	}
}

func TestGitDiscoverRoot_NotFound(t *testing.T) {
	c := qt.New(t)

	c.Run("no repository", func(c *qt.C) {
		_, found, err := repository.Git{}.DiscoverRoot(c.TB.TempDir())
		c.Assert(err, qt.IsNil)
		c.Assert(found, qt.IsFalse)
	})

	c.Run("bare repository has no worktree", func(c *qt.C) {
		dir := c.TB.TempDir()
		_, err := git.PlainInit(dir, true)
		c.Assert(err, qt.IsNil)

		_, found, err := repository.Git{}.DiscoverRoot(dir)
		c.Assert(err, qt.IsNil)
		c.Assert(found, qt.IsFalse)
	})
}

func TestGitDiscoverRoot_LinkedWorktree(t *testing.T) {
	c := qt.New(t)

	primary := t.TempDir()
	_, err := git.PlainInit(primary, false)
	c.Assert(err, qt.IsNil)

	// Lay out a linked worktree the way `git worktree add` does: a .git
	// file pointing at a per-worktree admin dir that names the common dir.
	wt := t.TempDir()
	admin := filepath.Join(primary, ".git", "worktrees", "feature")
	c.Assert(os.MkdirAll(admin, 0o755), qt.IsNil)
	for name, content := range map[string]string{
		"HEAD":      "ref: refs/heads/feature\n",
		"commondir": "../..\n",
		"gitdir":    filepath.Join(wt, ".git") + "\n",
	} {
		c.Assert(os.WriteFile(filepath.Join(admin, name), []byte(content), 0o644), qt.IsNil)
	}
	c.Assert(os.WriteFile(filepath.Join(wt, ".git"), []byte("gitdir: "+admin+"\n"), 0o644), qt.IsNil)

	nested := filepath.Join(wt, "src")
	c.Assert(os.MkdirAll(nested, 0o755), qt.IsNil)

	got, found, err := repository.Git{}.DiscoverRoot(nested)
	c.Assert(err, qt.IsNil)
	c.Assert(found, qt.IsTrue)
	c.Assert(got, qt.Equals, wt)
}

func TestGitDiscoverRoot_CorruptMetadata(t *testing.T) {
	c := qt.New(t)

	dir := t.TempDir()
	c.Assert(os.WriteFile(filepath.Join(dir, ".git"), []byte("garbage\n"), 0o644), qt.IsNil)

	_, found, err := repository.Git{}.DiscoverRoot(dir)
	c.Assert(err, qt.ErrorMatches, "open repository: .*gitdir.*")
	c.Assert(found, qt.IsFalse)

	r := &project.Resolver{Env: project.MapEnv{}, Discoverer: repository.Git{}}
	_, err = r.Discover(dir)
	c.Assert(errors.Is(err, project.ErrDiscoveryFailed), qt.IsTrue)

	var de *project.DiscoveryError
	c.Assert(errors.As(err, &de), qt.IsTrue)
	c.Assert(de.Dir, qt.Equals, dir)

	_, err = r.Assume(dir)
	c.Assert(errors.Is(err, project.ErrDiscoveryFailed), qt.IsTrue)
	c.Assert(errors.Is(err, project.ErrRootNotFound), qt.IsFalse)
}

func TestGit_WithResolver(t *testing.T) {
	c := qt.New(t)

	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	c.Assert(err, qt.IsNil)

	r := &project.Resolver{Env: project.MapEnv{}, Discoverer: repository.Default()}
	p, err := r.Assume(root)
	c.Assert(err, qt.IsNil)

	got, ok := p.Root()
	c.Assert(ok, qt.IsTrue)
	c.Assert(got, qt.Equals, root)
	c.Assert(*p.ConfigHome, qt.Equals, filepath.Join(root, ".config"))
}
