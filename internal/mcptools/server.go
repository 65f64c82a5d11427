package mcptools

import (
	"context"

	"github.com/chris-regnier/ansicolor/internal/ansi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// NewInMemoryServer creates an in-memory MCP server exposing the ANSI tools.
// Returns the server and a client transport for connecting to it.
func NewInMemoryServer(g ansi.Grammar) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(g)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with the ANSI tools registered.
func CreateMCPServer(g ansi.Grammar) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ansicolor",
		Version: Version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "strip_ansi",
		Description: "Remove ANSI color escape codes from text",
	}, StripHandler(g))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_ansi",
		Description: "Render text with ANSI color codes as a standalone HTML document",
	}, RenderHandler(g))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "segment_ansi",
		Description: "Split text into runs styled by the ANSI color code preceding each run",
	}, SegmentHandler(g))

	return server
}
