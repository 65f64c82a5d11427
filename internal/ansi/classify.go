package ansi

const (
	baseColorCode = 30
	brightParam   = 1

	// BrightPrefix is prepended to the color name for bold codes like "31;1".
	BrightPrefix = "bright "
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// ColorNames returns the color table in code order (30 through 37).
func ColorNames() []string {
	names := make([]string, len(colorNames))
	copy(names, colorNames[:])
	return names
}

// ColorName looks up the name for a foreground code in 30..37.
func ColorName(code int) (string, bool) {
	i := code - baseColorCode
	if i < 0 || i >= len(colorNames) {
		return "", false
	}
	return colorNames[i], true
}

// Classify maps a raw escape sequence to a style class. "\x1b[32m" is
// "green", "\x1b[33;1m" is "bright yellow"; every other code, including an
// empty one, is unstyled ("").
func Classify(styleCode string) string {
	params := parseParams(styleCode)
	switch len(params) {
	case 1:
		if name, ok := ColorName(params[0]); ok {
			return name
		}
	case 2:
		if name, ok := ColorName(params[0]); ok && params[1] == brightParam {
			return BrightPrefix + name
		}
	}
	return ""
}
