// Package render prints a resolved project as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/yalp/jsonpath"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/prj/internal/project"
)

// Format selects the output representation.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the accepted format names.
var Formats = []Format{Text, JSON, YAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want text | json | yaml)", s)
}

const unset = "<unset>"

// Write renders p to w in the given format.
func Write(w io.Writer, p *project.Project, f Format) error {
	switch f {
	case Text:
		return writeText(w, p)
	case JSON:
		b, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case YAML:
		b, err := yaml.Marshal(p)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func writeText(w io.Writer, p *project.Project) error {
	rows := []struct {
		label string
		val   *string
	}{
		{"root_directory", p.RootDirectory},
		{"project_id", p.ProjectID},
		{"config_home", p.ConfigHome},
		{"cache_home", p.CacheHome},
		{"data_home", p.DataHome},
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		v := unset
		if r.val != nil {
			v = *r.val
		}
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r.label, v); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Query evaluates a JSONPath expression such as "$.root_directory" against
// the JSON form of p.
func Query(p *project.Project, expr string) (any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	v, err := jsonpath.Read(doc, expr)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}
	return v, nil
}

// WriteValue prints a query result: strings raw, null as an empty line and
// everything else as compact JSON.
func WriteValue(w io.Writer, v any) error {
	switch t := v.(type) {
	case nil:
		_, err := fmt.Fprintln(w)
		return err
	case string:
		_, err := fmt.Fprintln(w, t)
		return err
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
}
