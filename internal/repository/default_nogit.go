//go:build nogit

package repository

import "github.com/go-ports/prj/internal/project"

// Enabled reports whether git discovery is compiled in.
const Enabled = false

// Default returns nil: this binary was built without repository discovery.
func Default() project.Discoverer { return nil }
