//go:build !nogit

package repository

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Git discovers git repositories with go-git, searching upward from the
// start directory for a .git entry.
type Git struct{}

// DiscoverRoot returns the working tree top directory of the repository
// containing start. Bare repositories and directories outside any
// repository report found == false.
func (Git) DiscoverRoot(start string) (string, bool, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("open worktree: %w", err)
	}
	return wt.Filesystem.Root(), true, nil
}
