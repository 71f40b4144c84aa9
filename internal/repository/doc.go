// Package repository provides the repository discovery capability used to
// find a project root when PRJ_ROOT is not set. Building with -tags nogit
// compiles discovery out; Default then returns nil.
package repository
