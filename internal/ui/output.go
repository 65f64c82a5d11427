package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chris-regnier/ansicolor/internal/ansi"
	"golang.org/x/term"
)

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// StripResult is the JSON representation of one stripped input.
type StripResult struct {
	Source  string `json:"source"`
	Removed int    `json:"removed"`
	Text    string `json:"text"`
}

// SegmentJSON is the JSON representation of a segment.
type SegmentJSON struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Style string `json:"style"`
	Class string `json:"class"`
}

// ToSegmentJSON converts segments for JSON output.
func ToSegmentJSON(segments []ansi.Segment) []SegmentJSON {
	out := make([]SegmentJSON, len(segments))
	for i, s := range segments {
		out[i] = SegmentJSON{Index: i, Text: s.Text, Style: s.Style, Class: s.Class()}
	}
	return out
}

// FormatSegments writes one line per segment: index, class and quoted text.
// Escape characters in styles are shown as \x1b.
func FormatSegments(w io.Writer, segments []ansi.Segment) {
	if len(segments) == 0 {
		fmt.Fprintln(w, "No segments.")
		return
	}
	for i, s := range segments {
		class := s.Class()
		if class == "" {
			class = "-"
		}
		fmt.Fprintf(w, "%3d  %-14s  %-10s  %q\n", i, class, ShowEscapes(s.Style), s.Text)
	}
}

// ShowEscapes makes ESC characters visible as \x1b.
func ShowEscapes(s string) string {
	return strings.ReplaceAll(s, "\x1b", `\x1b`)
}

// FormatStripped writes the status line for a stripped document.
func FormatStripped(name string, removed int) string {
	if removed == 0 {
		return fmt.Sprintf("No ANSI color codes in %s.", name)
	}
	return fmt.Sprintf("Removed ANSI color codes in %s.", name)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of f, or fallback off a terminal.
func TerminalWidth(f *os.File, fallback int) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
