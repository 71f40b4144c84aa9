package render_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/prj/internal/project"
	"github.com/go-ports/prj/internal/render"
)

func sample() *project.Project {
	root, cfg := "/r", "/r/.config"
	return &project.Project{RootDirectory: &root, ConfigHome: &cfg}
}

func TestParseFormat(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		in      string
		want    render.Format
		wantErr bool
	}{
		{"text", render.Text, false},
		{"json", render.JSON, false},
		{"YAML", render.YAML, false},
		{"ron", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		c.Run(tc.in, func(c *qt.C) {
			got, err := render.ParseFormat(tc.in)
			if tc.wantErr {
				c.Assert(err, qt.IsNotNil)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, tc.want)
		})
	}
}

func TestWrite_Text(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(render.Write(&buf, sample(), render.Text), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, ""+
		"root_directory:  /r\n"+
		"project_id:      <unset>\n"+
		"config_home:     /r/.config\n"+
		"cache_home:      <unset>\n"+
		"data_home:       <unset>\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_WriterFailure(t *testing.T) {
	c := qt.New(t)

	for _, f := range render.Formats {
		c.Run(string(f), func(c *qt.C) {
			err := render.Write(failingWriter{}, sample(), f)
			c.Assert(err, qt.ErrorMatches, "disk full")
		})
	}
}

func TestWrite_JSON(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(render.Write(&buf, sample(), render.JSON), qt.IsNil)

	var got map[string]any
	c.Assert(json.Unmarshal(buf.Bytes(), &got), qt.IsNil)
	c.Assert(got, qt.DeepEquals, map[string]any{
		"root_directory": "/r",
		"project_id":     nil,
		"config_home":    "/r/.config",
		"cache_home":     nil,
		"data_home":      nil,
	})
}

func TestWrite_YAML(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(render.Write(&buf, sample(), render.YAML), qt.IsNil)
	c.Assert(buf.String(), qt.Contains, "root_directory: /r\n")

	var got map[string]any
	c.Assert(yaml.Unmarshal(buf.Bytes(), &got), qt.IsNil)
	c.Assert(got["config_home"], qt.Equals, "/r/.config")
	c.Assert(got["project_id"], qt.IsNil)
}

func TestQuery_HappyPath(t *testing.T) {
	c := qt.New(t)

	v, err := render.Query(sample(), "$.root_directory")
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, "/r")

	var buf bytes.Buffer
	c.Assert(render.WriteValue(&buf, v), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, "/r\n")
}

func TestWriteValue(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string", "abc", "abc\n"},
		{"null", nil, "\n"},
		{"list", []any{"a", "b"}, "[\"a\",\"b\"]\n"},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			var buf bytes.Buffer
			c.Assert(render.WriteValue(&buf, tc.in), qt.IsNil)
			c.Assert(buf.String(), qt.Equals, tc.want)
		})
	}
}
