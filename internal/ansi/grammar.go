// Package ansi scans text for ANSI SGR (color) escape sequences, strips them,
// splits text into styled segments and maps color codes to style classes.
package ansi

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Grammar selects which escape sequence discipline the scanner accepts.
type Grammar int

const (
	// GrammarStrict requires the ESC character: ESC "[" (digits ";")* digits "m".
	GrammarStrict Grammar = iota

	// GrammarLenient makes the leading character optional and also accepts a
	// literal space in place of ESC. Bare bracketed text such as "[31m" matches.
	GrammarLenient
)

var (
	// ErrInvalidInput indicates an absent (nil) input at an entry point.
	ErrInvalidInput = errors.New("invalid input: text is absent")

	// ErrUnknownGrammar indicates a grammar name other than strict or lenient.
	ErrUnknownGrammar = errors.New("unknown escape grammar")
)

var (
	strictPattern  = regexp.MustCompile(`\x1b\[(?:\d+;)*\d+m`)
	lenientPattern = regexp.MustCompile(`(?: |\x1b)?\[(?:\d+;)*\d+m`)
)

// ParseGrammar maps a configuration value to a Grammar. The empty string
// selects GrammarStrict.
func ParseGrammar(name string) (Grammar, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "strict":
		return GrammarStrict, nil
	case "lenient":
		return GrammarLenient, nil
	default:
		return GrammarStrict, fmt.Errorf("%w: %q (want strict or lenient)", ErrUnknownGrammar, name)
	}
}

// String returns the configuration name of the grammar.
func (g Grammar) String() string {
	if g == GrammarLenient {
		return "lenient"
	}
	return "strict"
}

func (g Grammar) pattern() *regexp.Regexp {
	if g == GrammarLenient {
		return lenientPattern
	}
	return strictPattern
}
