// Package envexport writes a project's key/value view as environment
// assignments or as one file per key.
package envexport

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-ports/prj/internal/project"
)

// ErrWrite is matched by WriteError.
var ErrWrite = errors.New("writing environment export failed")

// WriteError wraps an I/O failure while exporting.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("export: %v", e.Err)
	}
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrWrite, e.Err} }

// WriteLines writes one KEY=VALUE line per present variable. When export is
// true each line is prefixed with "export ". Absent variables are skipped.
func WriteLines(w io.Writer, vars []project.Var, export bool) error {
	prefix := ""
	if export {
		prefix = "export "
	}
	for _, v := range vars {
		if !v.Present {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s=%s\n", prefix, v.Key, v.Value); err != nil {
			return &WriteError{Err: err}
		}
	}
	return nil
}

// WriteDir creates dir if needed and writes each present variable to a file
// named after its key. The file holds the raw value without a newline.
func WriteDir(dir string, vars []project.Var) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: dir, Err: err}
	}
	for _, v := range vars {
		if !v.Present {
			continue
		}
		path := filepath.Join(dir, v.Key)
		if err := os.WriteFile(path, []byte(v.Value), 0o644); err != nil { //nolint:gosec // exported values are not secrets
			return &WriteError{Path: path, Err: err}
		}
	}
	return nil
}
