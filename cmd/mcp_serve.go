package cmd

import (
	"context"
	"log/slog"

	"github.com/chris-regnier/ansicolor/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes the ANSI tools
over stdio transport.

Available tools:
  - strip_ansi: Remove ANSI color codes from text
  - render_ansi: Render colored text as a standalone HTML document
  - segment_ansi: List the styled runs of colored text

Example client config:
  {
    "mcpServers": {
      "ansicolor": {
        "command": "/path/to/ansicolor",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	server := mcptools.CreateMCPServer(currentGrammar())

	// stdout is reserved for the MCP protocol; slog writes to stderr
	slog.Info("starting MCP server", "transport", "stdio", "grammar", currentGrammar().String())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	// This blocks until the transport is closed
	return server.Run(ctx, &mcp.StdioTransport{})
}
