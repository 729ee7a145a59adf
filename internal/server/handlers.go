package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/groupie/internal/config"
	"github.com/mj1618/groupie/internal/layout"
	"github.com/mj1618/groupie/internal/status"
	"gopkg.in/yaml.v3"
	"pkt.systems/pslog"
)

// intParam reads a numeric tool argument. JSON numbers arrive as float64.
func intParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

func (s *Server) withLogger(ctx context.Context) context.Context {
	return pslog.ContextWithLogger(ctx, s.log)
}

func (s *Server) handleStatusLine(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx = s.withLogger(ctx)
	cfg := s.cfg
	cfg.Width = intParam(request.GetArguments(), "width", cfg.Width)
	if cfg.Width < config.MinWidth {
		return mcp.NewToolResultError(fmt.Sprintf("width must be at least %d", config.MinWidth)), nil
	}

	windows, err := s.cache.Fetch(ctx, s.querier)
	if err != nil {
		s.log.Warn("status_line refresh failed", "err", err)
		return mcp.NewToolResultError(status.ErrorLine(err.Error())), nil
	}
	return mcp.NewToolResultText(layout.FormatLine(windows, cfg)), nil
}

func (s *Server) handleGroupWindows(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx = s.withLogger(ctx)
	windows, err := s.cache.Fetch(ctx, s.querier)
	if err != nil {
		s.log.Warn("group_windows refresh failed", "err", err)
		return mcp.NewToolResultError(status.ErrorLine(err.Error())), nil
	}
	b, err := yaml.Marshal(windows)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
