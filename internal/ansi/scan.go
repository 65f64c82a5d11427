package ansi

import (
	"iter"
	"regexp"
	"strconv"
	"strings"
)

// Match is one escape sequence found in a text.
type Match struct {
	Start int    `json:"start"`
	End   int    `json:"end"` // exclusive
	Text  string `json:"text"`
}

// Params returns the numeric parameter list encoded in the sequence,
// e.g. "\x1b[33;1m" yields [33 1].
func (m Match) Params() []int {
	return parseParams(m.Text)
}

// Processor applies one Grammar. The zero value is not usable; use New.
// A Processor holds no mutable state and is safe for concurrent use.
type Processor struct {
	grammar Grammar
	re      *regexp.Regexp
}

var defaultProcessor = New(GrammarStrict)

// New returns a Processor for the given grammar.
func New(g Grammar) *Processor {
	return &Processor{grammar: g, re: g.pattern()}
}

// Grammar reports the discipline this processor scans with.
func (p *Processor) Grammar() Grammar {
	return p.grammar
}

// Scan returns the escape sequences of text in document order. The sequence
// is lazy and restartable: every range over it scans from the beginning.
func (p *Processor) Scan(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		pos := 0
		for pos < len(text) {
			loc := p.re.FindStringIndex(text[pos:])
			if loc == nil {
				return
			}
			start, end := pos+loc[0], pos+loc[1]
			if !yield(Match{Start: start, End: end, Text: text[start:end]}) {
				return
			}
			pos = end
		}
	}
}

// Matches collects Scan into a slice.
func (p *Processor) Matches(text string) []Match {
	var out []Match
	for m := range p.Scan(text) {
		out = append(out, m)
	}
	return out
}

// Scan scans text with the strict grammar.
func Scan(text string) iter.Seq[Match] {
	return defaultProcessor.Scan(text)
}

// Matches collects the strict-grammar matches of text.
func Matches(text string) []Match {
	return defaultProcessor.Matches(text)
}

// parseParams extracts the digits between "[" and the final "m".
// Malformed input yields nil rather than an error.
func parseParams(code string) []int {
	open := strings.IndexByte(code, '[')
	if open < 0 || !strings.HasSuffix(code, "m") || open+1 > len(code)-1 {
		return nil
	}
	body := code[open+1 : len(code)-1]
	if body == "" {
		return nil
	}
	fields := strings.Split(body, ";")
	params := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil
		}
		params = append(params, n)
	}
	return params
}
