package project

import (
	"errors"
	"fmt"
)

var (
	// ErrRootNotFound is matched by RootNotFoundError.
	ErrRootNotFound = errors.New("project root not found")

	// ErrDiscoveryFailed is matched by DiscoveryError.
	ErrDiscoveryFailed = errors.New("repository discovery failed")

	// ErrIDFile is matched by IDFileError.
	ErrIDFile = errors.New("reading project id file failed")

	// ErrInvalidID indicates a persisted id that does not match the id pattern.
	ErrInvalidID = errors.New("invalid project id")
)

// RootNotFoundError is returned by Assume when no root could be established.
type RootNotFoundError struct {
	Dir string
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("failed to find project root directory in search from %s", e.Dir)
}

// Is reports whether target is ErrRootNotFound.
func (*RootNotFoundError) Is(target error) bool { return target == ErrRootNotFound }

// DiscoveryError wraps a failure of the repository discovery capability.
type DiscoveryError struct {
	Dir string
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("repository discovery from %s: %v", e.Dir, e.Err)
}

func (e *DiscoveryError) Unwrap() []error { return []error{ErrDiscoveryFailed, e.Err} }

// IDFileError wraps a failure reading or validating a prj_id file.
type IDFileError struct {
	Path string
	Err  error
}

func (e *IDFileError) Error() string {
	return fmt.Sprintf("project id file %s: %v", e.Path, e.Err)
}

func (e *IDFileError) Unwrap() []error { return []error{ErrIDFile, e.Err} }
