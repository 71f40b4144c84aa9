//go:build !nogit

package repository

import "github.com/go-ports/prj/internal/project"

// Enabled reports whether git discovery is compiled in.
const Enabled = true

// Default returns the discovery capability compiled into this binary.
func Default() project.Discoverer { return Git{} }
