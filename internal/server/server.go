// Package server exposes the status pipeline as MCP tools.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/groupie/internal/config"
	"github.com/mj1618/groupie/internal/platform"
	"github.com/mj1618/groupie/internal/version"
	"pkt.systems/pslog"
)

// Options holds MCP server configuration.
type Options struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the window querier and snapshot cache.
type Server struct {
	querier platform.Querier
	cfg     config.Config
	cache   *SnapshotCache
	log     pslog.Logger
	mcp     *mcpserver.MCPServer
}

// New creates and configures an MCP server with the groupie tools.
func New(ctx context.Context, q platform.Querier, cfg config.Config, opts Options) *Server {
	s := &Server{
		querier: q,
		cfg:     cfg,
		cache:   NewSnapshotCache(opts.CacheTTL),
		log:     pslog.Ctx(ctx),
	}
	s.mcp = mcpserver.NewMCPServer("groupie", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(opts Options) error {
	switch opts.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", opts.Port)
		s.log.Info("mcp server listening", "addr", addr)
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", opts.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("status_line",
			mcp.WithDescription("Render the grouped windows of the active workspace as the status bar line"),
			mcp.WithNumber("width", mcp.Description("Override the total width in characters (minimum 3)")),
		),
		s.handleStatusLine,
	)

	s.mcp.AddTool(
		mcp.NewTool("group_windows",
			mcp.WithDescription("List the windows of the active workspace in group order with their rank and focus state"),
		),
		s.handleGroupWindows,
	)
}
