package ui

import (
	"strings"

	"github.com/chris-regnier/ansicolor/internal/ansi"
)

// StyleSegments renders segments for the terminal viewer. Each line of a
// non-empty segment is styled by its class, so the output shows exactly the
// classes the HTML preview would assign.
func StyleSegments(segments []ansi.Segment, theme Theme) string {
	var sb strings.Builder
	for _, seg := range ansi.NonEmpty(segments) {
		style := theme.ClassStyle(seg.Class())
		for i, line := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				sb.WriteByte('\n')
			}
			if line != "" {
				sb.WriteString(style.Render(line))
			}
		}
	}
	return sb.String()
}
