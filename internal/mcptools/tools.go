package mcptools

import (
	"context"
	"log/slog"

	"github.com/chris-regnier/ansicolor/internal/ansi"
	"github.com/chris-regnier/ansicolor/internal/markup"
	"github.com/chris-regnier/ansicolor/internal/ui"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// StripHandler returns the handler function for the strip_ansi MCP tool.
func StripHandler(g ansi.Grammar) func(ctx context.Context, req *mcp.CallToolRequest, input StripInput) (*mcp.CallToolResult, StripOutput, error) {
	proc := ansi.New(g)
	return func(ctx context.Context, req *mcp.CallToolRequest, input StripInput) (*mcp.CallToolResult, StripOutput, error) {
		text, err := proc.StripNullable(input.Text)
		if err != nil {
			return nil, StripOutput{}, err
		}
		removed := len(proc.Matches(*input.Text))
		slog.Debug("strip_ansi", "bytes", len(*input.Text), "removed", removed)
		return nil, StripOutput{Text: text, Removed: removed}, nil
	}
}

// RenderHandler returns the handler function for the render_ansi MCP tool.
func RenderHandler(g ansi.Grammar) func(ctx context.Context, req *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		if input.Text == nil {
			return nil, RenderOutput{}, ansi.ErrInvalidInput
		}
		html := markup.New(markup.Options{Title: input.Title, Grammar: g}).Render(*input.Text)
		slog.Debug("render_ansi", "bytes", len(*input.Text), "html_bytes", len(html))
		return nil, RenderOutput{HTML: html}, nil
	}
}

// SegmentHandler returns the handler function for the segment_ansi MCP tool.
func SegmentHandler(g ansi.Grammar) func(ctx context.Context, req *mcp.CallToolRequest, input SegmentInput) (*mcp.CallToolResult, SegmentOutput, error) {
	proc := ansi.New(g)
	return func(ctx context.Context, req *mcp.CallToolRequest, input SegmentInput) (*mcp.CallToolResult, SegmentOutput, error) {
		if input.Text == nil {
			return nil, SegmentOutput{}, ansi.ErrInvalidInput
		}
		return nil, SegmentOutput{Segments: ui.ToSegmentJSON(proc.Split(*input.Text))}, nil
	}
}
