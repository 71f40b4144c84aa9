// Package shared holds the context passed to all CLI commands.
package shared

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/go-ports/prj/internal/config"
	"github.com/go-ports/prj/internal/logging"
	"github.com/go-ports/prj/internal/project"
	"github.com/go-ports/prj/internal/repository"
)

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// ConfigPath overrides the settings file location.
	// When empty, $(UserConfigDir)/prj/config.yaml is used.
	ConfigPath string
	// LogLevel and LogFormat override the settings file when non-empty.
	LogLevel  string
	LogFormat string
	// Directory is the directory resolution starts from.
	// When empty, the process working directory is used.
	Directory string

	// Env replaces the process environment when non-nil.
	Env project.Env

	settings *config.Config
	logger   *zap.Logger
}

// Settings loads the settings file once per invocation.
func (c *Context) Settings() (*config.Config, error) {
	if c.settings != nil {
		return c.settings, nil
	}
	path, err := config.ResolvePath(c.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	c.settings = cfg
	return cfg, nil
}

// Logger returns the diagnostic logger, writing to stderr.
func (c *Context) Logger(stderr io.Writer) (*zap.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.Settings()
	if err != nil {
		return nil, err
	}
	level, format := cfg.Log.Level, cfg.Log.Format
	if c.LogLevel != "" {
		level = c.LogLevel
	}
	if c.LogFormat != "" {
		format = c.LogFormat
	}
	logger, err := logging.New(stderr, level, format)
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

// Resolver builds a project resolver honouring the discovery settings.
func (c *Context) Resolver(stderr io.Writer) (*project.Resolver, error) {
	cfg, err := c.Settings()
	if err != nil {
		return nil, err
	}
	logger, err := c.Logger(stderr)
	if err != nil {
		return nil, err
	}

	var d project.Discoverer
	if cfg.Discovery.Git {
		d = repository.Default()
	}
	r := project.NewResolver(d, logger)
	if c.Env != nil {
		r.Env = c.Env
	}
	return r, nil
}

// WorkDir returns the directory resolution starts from.
func (c *Context) WorkDir() (string, error) {
	if c.Directory != "" {
		return c.Directory, nil
	}
	return os.Getwd()
}

// Assume resolves the project with defaults filled in.
func (c *Context) Assume(stderr io.Writer) (*project.Project, error) {
	return c.resolve(stderr, (*project.Resolver).Assume)
}

// Locate resolves the root and homes without reading a prj_id file.
func (c *Context) Locate(stderr io.Writer) (*project.Project, error) {
	return c.resolve(stderr, (*project.Resolver).Locate)
}

// Discover resolves the project without defaults.
func (c *Context) Discover(stderr io.Writer) (*project.Project, error) {
	return c.resolve(stderr, (*project.Resolver).Discover)
}

func (c *Context) resolve(stderr io.Writer, fn func(*project.Resolver, string) (*project.Project, error)) (*project.Project, error) {
	r, err := c.Resolver(stderr)
	if err != nil {
		return nil, err
	}
	dir, err := c.WorkDir()
	if err != nil {
		return nil, err
	}
	return fn(r, dir)
}
