package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Discoverer locates a repository working tree by searching upward from a
// directory. found is false when no repository contains start.
type Discoverer interface {
	DiscoverRoot(start string) (root string, found bool, err error)
}

// Resolver builds a Project from an environment view and an optional
// Discoverer. The zero value reads nothing and discovers nothing; use
// NewResolver for the process environment.
type Resolver struct {
	Env        Env
	Discoverer Discoverer // nil disables repository discovery
	Logger     *zap.Logger
}

// NewResolver returns a Resolver reading the process environment.
func NewResolver(d Discoverer, logger *zap.Logger) *Resolver {
	return &Resolver{Env: OSEnv, Discoverer: d, Logger: logger}
}

// Discover returns the project as found in the environment and, failing
// that, through repository discovery from cwd. No defaults are filled in,
// so every field of the result may be absent.
func (r *Resolver) Discover(cwd string) (*Project, error) {
	p, err := r.discover(cwd)
	if err != nil {
		return nil, err
	}

	// Only the environment-supplied config home is consulted here.
	if p.ProjectID == nil && p.ConfigHome != nil {
		id, err := r.readID(*p.ConfigHome)
		if err != nil {
			return nil, err
		}
		p.ProjectID = id
	}
	return p, nil
}

// Assume runs Locate, then looks for a prj_id file in the resulting config
// home. It fails with a RootNotFoundError when no root could be established.
func (r *Resolver) Assume(cwd string) (*Project, error) {
	p, err := r.Locate(cwd)
	if err != nil {
		return nil, err
	}

	if p.ProjectID == nil {
		id, err := r.readID(*p.ConfigHome)
		if err != nil {
			return nil, err
		}
		p.ProjectID = id
	}
	return p, nil
}

// Locate establishes the root and fills unset homes from it. Unlike Assume
// it never reads a prj_id file, so ProjectID is set only by PRJ_ID.
func (r *Resolver) Locate(cwd string) (*Project, error) {
	p, err := r.discover(cwd)
	if err != nil {
		return nil, err
	}

	root, ok := p.Root()
	if !ok {
		return nil, &RootNotFoundError{Dir: cwd}
	}

	if p.ConfigHome == nil {
		p.ConfigHome = ptr(filepath.Join(root, DefaultConfigHome))
	}
	if p.DataHome == nil {
		p.DataHome = ptr(filepath.Join(root, DefaultDataHome))
	}
	if p.CacheHome == nil {
		p.CacheHome = ptr(filepath.Join(root, DefaultCacheHome))
	}
	return p, nil
}

// discover reads the environment and runs repository discovery.
func (r *Resolver) discover(cwd string) (*Project, error) {
	root, err := r.root(cwd)
	if err != nil {
		return nil, err
	}

	p := &Project{
		RootDirectory: root,
		ConfigHome:    r.lookup(EnvConfigHome),
		DataHome:      r.lookup(EnvDataHome),
		CacheHome:     r.lookup(EnvCache),
	}
	if id := r.lookup(EnvID); id != nil {
		r.logger().Debug("using environment variable as project id", zap.String("var", EnvID))
		p.ProjectID = id
	}
	return p, nil
}

func (r *Resolver) root(cwd string) (*string, error) {
	if v := r.lookup(EnvRoot); v != nil {
		r.logger().Debug("using environment variable as project root", zap.String("var", EnvRoot))
		return v, nil
	}

	if r.Discoverer == nil {
		return nil, nil
	}
	dir, found, err := r.Discoverer.DiscoverRoot(cwd)
	if err != nil {
		return nil, &DiscoveryError{Dir: cwd, Err: err}
	}
	if !found {
		r.logger().Debug("no repository found", zap.String("dir", cwd))
		return nil, nil
	}
	r.logger().Debug("using repository as project root", zap.String("root", dir))
	return &dir, nil
}

func (r *Resolver) lookup(key string) *string {
	if r.Env == nil {
		return nil
	}
	v, ok := r.Env.LookupEnv(key)
	if !ok {
		return nil
	}
	return &v
}

// readID returns the trimmed contents of dir/prj_id, or nil if the file
// does not exist.
func (r *Resolver) readID(dir string) (*string, error) {
	path := filepath.Join(dir, IDFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &IDFileError{Path: path, Err: err}
	}

	id := strings.TrimSpace(string(data))
	if !ValidID(id) {
		return nil, &IDFileError{Path: path, Err: fmt.Errorf("%w: %q", ErrInvalidID, id)}
	}
	r.logger().Debug("using id file as project id", zap.String("path", path))
	return &id, nil
}

func (r *Resolver) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
