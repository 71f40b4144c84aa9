// Package mcp provides the stdio MCP server exposing the resolved project
// context to coding agents.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-ports/prj/internal/buildinfo"
	"github.com/go-ports/prj/internal/envexport"
	"github.com/go-ports/prj/internal/project"
)

const infoDescription = `Resolve the project context for a directory: root directory, project id, and config, cache and data homes. Call this before reading or writing project-scoped files so paths land in the right place. Unset homes are derived from the root unless strict is true.` //nolint:lll

const envDescription = `Return the project context as KEY=VALUE lines (PRJ_ROOT, PRJ_DATA_HOME, PRJ_CONFIG_HOME, PRJ_CACHE, PRJ_ID) suitable for a shell or an env file.` //nolint:lll

// NewServer creates and registers the project tools on a new MCP server.
// It is separate from Serve so that tests can obtain a configured server
// without committing to the stdio transport.
func NewServer(r *project.Resolver) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("prj", buildinfo.Version)
	registerTools(s, r)
	return s
}

// Serve starts the stdio MCP server, blocking until stdin closes.
func Serve(_ context.Context, r *project.Resolver) error {
	return mcpserver.ServeStdio(NewServer(r))
}

func registerTools(s *mcpserver.MCPServer, r *project.Resolver) {
	s.AddTool(mcp.NewTool("project_info",
		mcp.WithDescription(infoDescription),
		mcp.WithString("directory",
			mcp.Description("Directory to resolve from. Defaults to the server's working directory."),
		),
		mcp.WithBoolean("strict",
			mcp.Description("Skip defaulting; report only what the environment and repository provide."),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleInfo(ctx, r, req)
	})

	s.AddTool(mcp.NewTool("project_env",
		mcp.WithDescription(envDescription),
		mcp.WithString("directory",
			mcp.Description("Directory to resolve from. Defaults to the server's working directory."),
		),
		mcp.WithBoolean("export",
			mcp.Description("Prefix each line with \"export \"."),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleEnv(ctx, r, req)
	})
}

// ---------------------------------------------------------------------------
// Tool handlers
// ---------------------------------------------------------------------------

func handleInfo(_ context.Context, r *project.Resolver, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := directory(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resolve := r.Assume
	if req.GetBool("strict", false) {
		resolve = r.Discover
	}
	p, err := resolve(dir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(p)
}

func handleEnv(_ context.Context, r *project.Resolver, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := directory(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := r.Assume(dir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	if err := envexport.WriteLines(&buf, p.Vars(), req.GetBool("export", false)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func directory(req mcp.CallToolRequest) (string, error) {
	if dir := req.GetString("directory", ""); dir != "" {
		return dir, nil
	}
	return os.Getwd()
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
