package mcptools

import "github.com/chris-regnier/ansicolor/internal/ui"

// StripInput is the input schema for the strip_ansi MCP tool.
type StripInput struct {
	Text *string `json:"text" jsonschema:"Text that may contain ANSI color codes"`
}

// StripOutput is the output schema for the strip_ansi MCP tool.
type StripOutput struct {
	Text    string `json:"text"`
	Removed int    `json:"removed"`
}

// RenderInput is the input schema for the render_ansi MCP tool.
type RenderInput struct {
	Text  *string `json:"text" jsonschema:"Text that may contain ANSI color codes"`
	Title string  `json:"title,omitempty" jsonschema:"Optional HTML document title"`
}

// RenderOutput is the output schema for the render_ansi MCP tool.
type RenderOutput struct {
	HTML string `json:"html"`
}

// SegmentInput is the input schema for the segment_ansi MCP tool.
type SegmentInput struct {
	Text *string `json:"text" jsonschema:"Text that may contain ANSI color codes"`
}

// SegmentOutput is the output schema for the segment_ansi MCP tool.
type SegmentOutput struct {
	Segments []ui.SegmentJSON `json:"segments"`
}
