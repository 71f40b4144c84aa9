// Package runner executes commands inside a project root.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// Exit codes used when the child provides none.
const (
	// CodeFailure is used for errors of prj itself.
	CodeFailure = 1
	// CodeNoStatus is used when waiting on the child failed without an
	// exit status or signal.
	CodeNoStatus = 125
	// CodeSpawnFailure is used when the command could not be started.
	CodeSpawnFailure = 127
	// CodeSignalBase is added to the signal number of a killed child,
	// following the shell convention.
	CodeSignalBase = 128
)

// ErrNoRoot is returned when Run is called without a root directory.
var ErrNoRoot = errors.New("no project root directory")

// ExitError reports a child that exited non-zero or could not be spawned.
// Code is the exit code the calling process should terminate with.
type ExitError struct {
	Code int
	Err  error // spawn or wait error, nil when the child exited normally
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command execution failed (exit %d): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("command execution failed (exit %d)", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Stdio holds the streams handed to the child. Nil fields inherit the
// corresponding stream of the current process.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run starts name with args in dir and waits for it to finish. A non-zero
// exit is reported as *ExitError carrying the child's code.
func Run(dir, name string, args []string, stdio Stdio) error {
	if dir == "" {
		return ErrNoRoot
	}

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = orReader(stdio.In, os.Stdin)
	cmd.Stdout = orWriter(stdio.Out, os.Stdout)
	cmd.Stderr = orWriter(stdio.Err, os.Stderr)

	if err := cmd.Start(); err != nil {
		return &ExitError{Code: CodeSpawnFailure, Err: err}
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code >= 0 {
			return &ExitError{Code: code}
		}
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return &ExitError{Code: CodeSignalBase + int(ws.Signal()), Err: err}
		}
	}
	return &ExitError{Code: CodeNoStatus, Err: err}
}

// ExitCode returns the process exit code for err: 0 for nil, the child's
// code for an *ExitError and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return CodeFailure
}

func orReader(r, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
