package ansi

import "strings"

// Segment is a run of text governed by the escape sequence before it.
// Style holds that sequence verbatim and is empty when none precedes the run.
type Segment struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

// Class resolves the segment's style class.
func (s Segment) Class() string {
	return Classify(s.Style)
}

// Split partitions text into segments. The last code wins: each segment is
// styled only by the sequence that ended most recently before it. Segments
// may be empty when two sequences are adjacent.
func (p *Processor) Split(text string) []Segment {
	var (
		segments []Segment
		pos      int
		active   string
	)
	for m := range p.Scan(text) {
		segments = append(segments, Segment{Text: text[pos:m.Start], Style: active})
		pos = m.End
		active = m.Text
	}
	return append(segments, Segment{Text: text[pos:], Style: active})
}

// Split partitions text using the strict grammar.
func Split(text string) []Segment {
	return defaultProcessor.Split(text)
}

// Reconstruct concatenates segment texts. For any text,
// Reconstruct(p.Split(text)) == p.Strip(text).
func Reconstruct(segments []Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// NonEmpty filters out segments without text.
func NonEmpty(segments []Segment) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if s.Text != "" {
			out = append(out, s)
		}
	}
	return out
}
