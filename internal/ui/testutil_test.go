package ui

import (
	"github.com/chris-regnier/ansicolor/internal/ansi"
	"github.com/chris-regnier/ansicolor/internal/config"
)

// stripANSI removes SGR sequences so assertions can compare plain text.
func stripANSI(s string) string {
	return ansi.Strip(s)
}

func testThemeConfig() config.ThemeConfig {
	return config.ThemeConfig{Preset: "default-dark"}
}
