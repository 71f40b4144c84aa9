package project

import (
	"os"
	"regexp"
)

// Environment variable names read by the resolver.
const (
	EnvRoot       = "PRJ_ROOT"
	EnvConfigHome = "PRJ_CONFIG_HOME"
	EnvDataHome   = "PRJ_DATA_HOME"
	EnvCache      = "PRJ_CACHE"
	EnvID         = "PRJ_ID"
)

// IDFile is the name of the file holding a persisted project id, looked up
// directly inside a config home.
const IDFile = "prj_id"

// Leaf names joined onto the root when a home is not set explicitly.
const (
	DefaultConfigHome = ".config"
	DefaultDataHome   = ".data"
	DefaultCacheHome  = ".cache"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{0,32}$`)

// ValidID reports whether id is an acceptable project id.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Project is a resolved project context. A nil field is absent.
type Project struct {
	// RootDirectory is the top-level directory of the project.
	RootDirectory *string `json:"root_directory" yaml:"root_directory"`
	// ProjectID is an optional identifier for the project.
	ProjectID *string `json:"project_id" yaml:"project_id"`
	// ConfigHome holds project specific configuration.
	ConfigHome *string `json:"config_home" yaml:"config_home"`
	// CacheHome holds project specific cache data.
	CacheHome *string `json:"cache_home" yaml:"cache_home"`
	// DataHome holds project specific data files.
	DataHome *string `json:"data_home" yaml:"data_home"`
}

// Root returns the root directory and whether it is set.
func (p *Project) Root() (string, bool) {
	return deref(p.RootDirectory)
}

// ID returns the project id and whether it is set.
func (p *Project) ID() (string, bool) {
	return deref(p.ProjectID)
}

// Var is one entry of the key/value view of a Project.
type Var struct {
	Key     string
	Value   string
	Present bool
}

// Vars returns the project as environment variables in a fixed order.
// Absent fields are included with Present set to false.
func (p *Project) Vars() []Var {
	fields := []struct {
		key string
		val *string
	}{
		{EnvRoot, p.RootDirectory},
		{EnvDataHome, p.DataHome},
		{EnvConfigHome, p.ConfigHome},
		{EnvCache, p.CacheHome},
		{EnvID, p.ProjectID},
	}
	vars := make([]Var, 0, len(fields))
	for _, f := range fields {
		v, ok := deref(f.val)
		vars = append(vars, Var{Key: f.key, Value: v, Present: ok})
	}
	return vars
}

// Map returns the present entries of Vars keyed by variable name.
func (p *Project) Map() map[string]string {
	m := make(map[string]string)
	for _, v := range p.Vars() {
		if v.Present {
			m[v.Key] = v.Value
		}
	}
	return m
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func ptr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Environment view
// ---------------------------------------------------------------------------

// Env looks up environment variables. The boolean distinguishes an unset
// variable from one set to the empty string.
type Env interface {
	LookupEnv(key string) (string, bool)
}

// EnvFunc adapts a lookup function to Env.
type EnvFunc func(key string) (string, bool)

// LookupEnv calls f(key).
func (f EnvFunc) LookupEnv(key string) (string, bool) { return f(key) }

// OSEnv reads the process environment.
var OSEnv Env = EnvFunc(os.LookupEnv)

// MapEnv is an Env backed by a map.
type MapEnv map[string]string

// LookupEnv returns m[key].
func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
