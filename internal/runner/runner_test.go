package runner_test

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/prj/internal/runner"
)

func requireTool(c *qt.C, name string) {
	if _, err := exec.LookPath(name); err != nil {
		c.Skip(name + " not available")
	}
}

func TestRun_HappyPath(t *testing.T) {
	c := qt.New(t)
	requireTool(c, "pwd")

	dir := t.TempDir()
	var out bytes.Buffer
	err := runner.Run(dir, "pwd", nil, runner.Stdio{Out: &out})
	c.Assert(err, qt.IsNil)

	got, err := filepath.EvalSymlinks(strings.TrimSpace(out.String()))
	c.Assert(err, qt.IsNil)
	want, err := filepath.EvalSymlinks(dir)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, want)
}

func TestRun_ExitCodeMirrored(t *testing.T) {
	c := qt.New(t)

	c.Run("false exits 1", func(c *qt.C) {
		requireTool(c, "false")
		err := runner.Run(c.TB.TempDir(), "false", nil, runner.Stdio{})

		var exitErr *runner.ExitError
		c.Assert(errors.As(err, &exitErr), qt.IsTrue)
		c.Assert(exitErr.Code, qt.Equals, 1)
		c.Assert(runner.ExitCode(err), qt.Equals, 1)
	})

	c.Run("arbitrary code", func(c *qt.C) {
		requireTool(c, "sh")
		err := runner.Run(c.TB.TempDir(), "sh", []string{"-c", "exit 42"}, runner.Stdio{})
		c.Assert(runner.ExitCode(err), qt.Equals, 42)
	})
}

func TestRun_KilledBySignal(t *testing.T) {
	c := qt.New(t)

	if runtime.GOOS == "windows" {
		c.Skip("signals are not delivered this way on windows")
	}
	requireTool(c, "sh")

	err := runner.Run(c.TB.TempDir(), "sh", []string{"-c", "kill -TERM $$"}, runner.Stdio{})

	var exitErr *runner.ExitError
	c.Assert(errors.As(err, &exitErr), qt.IsTrue)
	c.Assert(exitErr.Code, qt.Equals, runner.CodeSignalBase+int(syscall.SIGTERM))
	c.Assert(exitErr.Code, qt.Not(qt.Equals), runner.CodeFailure)
	c.Assert(exitErr.Err, qt.IsNotNil)
}

func TestRun_FailurePath(t *testing.T) {
	c := qt.New(t)

	c.Run("missing root", func(c *qt.C) {
		err := runner.Run("", "true", nil, runner.Stdio{})
		c.Assert(errors.Is(err, runner.ErrNoRoot), qt.IsTrue)
		c.Assert(runner.ExitCode(err), qt.Equals, runner.CodeFailure)
	})

	c.Run("command not found", func(c *qt.C) {
		err := runner.Run(c.TB.TempDir(), "prj-command-that-does-not-exist", nil, runner.Stdio{})
		c.Assert(runner.ExitCode(err), qt.Equals, runner.CodeSpawnFailure)
		c.Assert(errors.Is(err, exec.ErrNotFound), qt.IsTrue)
	})
}

func TestExitCode(t *testing.T) {
	c := qt.New(t)

	c.Assert(runner.ExitCode(nil), qt.Equals, 0)
	c.Assert(runner.ExitCode(errors.New("boom")), qt.Equals, 1)
	c.Assert(runner.ExitCode(fmt.Errorf("exec: %w", &runner.ExitError{Code: 3})), qt.Equals, 3)
}
