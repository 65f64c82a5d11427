package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/chris-regnier/ansicolor/internal/ansi"
)

// markdownRenderer is a cached glamour renderer instance
var markdownRenderer *glamour.TermRenderer

// cachedWidth stores the width used for the current renderer
var cachedWidth int

// cachedStyle stores the style used for the current renderer
var cachedStyle string

// initMarkdownRenderer initializes the glamour renderer with the given width and style
func initMarkdownRenderer(width int, style string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}

	markdownRenderer = renderer
	cachedWidth = width
	cachedStyle = style
	return nil
}

// RenderMarkdownWithStyle renders markdown content using the specified glamour style.
// Returns the original content if rendering fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}

	if markdownRenderer == nil || width != cachedWidth || style != cachedStyle {
		if err := initMarkdownRenderer(width, style); err != nil {
			return content
		}
	}

	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}

// PaletteMarkdown describes the recognized color codes as a markdown table.
func PaletteMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Recognized color codes\n\n")
	sb.WriteString("| code | class | bright code | bright class |\n")
	sb.WriteString("|------|-------|-------------|--------------|\n")
	for i, name := range ansi.ColorNames() {
		code := 30 + i
		fmt.Fprintf(&sb, "| `%d` | %s | `%d;1` | %s%s |\n", code, name, code, ansi.BrightPrefix, name)
	}
	sb.WriteString("\nAny other code renders unstyled.\n")
	return sb.String()
}

// PaletteSamples shows every class in its terminal style, one per line.
func PaletteSamples(theme Theme) string {
	lines := make([]string, 0, 2*len(ansi.ColorNames()))
	for _, name := range ansi.ColorNames() {
		bright := ansi.BrightPrefix + name
		lines = append(lines, theme.ClassStyle(name).Render(name)+"  "+theme.ClassStyle(bright).Render(bright))
	}
	return strings.Join(lines, "\n")
}
