package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/groupie/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the window group status",
	Long: `Start a Model Context Protocol (MCP) server with two tools:

  status_line     the formatted status line (optional width override)
  group_windows   the active workspace's windows in group order

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport

Examples:
  groupie serve
  groupie serve --transport streamable-http --port 8080
  groupie serve --cache-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 250, "Window snapshot cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}

	opts := server.Options{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
	}
	srv := server.New(cmd.Context(), provider.Querier, cfg, opts)
	if err := srv.Serve(opts); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
