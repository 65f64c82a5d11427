package ui

import (
	"strconv"
	"strings"
	"testing"

	"github.com/chris-regnier/ansicolor/internal/ansi"
)

func TestRenderMarkdownWithStyle(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{name: "plain text", input: "Hello world", wantContains: []string{"Hello world"}},
		{name: "markdown heading", input: "# Main Title", wantContains: []string{"Main Title"}},
		{name: "markdown list", input: "- Item 1\n- Item 2", wantContains: []string{"Item 1", "Item 2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderMarkdownWithStyle(tt.input, 80, "notty"))
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("expected %q in output, got %q", want, got)
				}
			}
		})
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := RenderMarkdownWithStyle("", 80, "dark"); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderMarkdownBadStyleFallsBack(t *testing.T) {
	if got := RenderMarkdownWithStyle("text", 80, "/no/such/style.json"); got != "text" {
		t.Errorf("expected raw content on renderer failure, got %q", got)
	}
}

func TestPaletteMarkdown(t *testing.T) {
	md := PaletteMarkdown()
	for i, name := range ansi.ColorNames() {
		code := 30 + i
		if !strings.Contains(md, "| `"+strconv.Itoa(code)+"` | "+name+" |") {
			t.Errorf("missing row for %s", name)
		}
		if !strings.Contains(md, "bright "+name) {
			t.Errorf("missing bright class for %s", name)
		}
	}
}

func TestPaletteSamples(t *testing.T) {
	got := stripANSI(PaletteSamples(Theme{}))
	lines := strings.Split(got, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d", len(lines))
	}
	if lines[1] != "red  bright red" {
		t.Errorf("unexpected sample line %q", lines[1])
	}
}
