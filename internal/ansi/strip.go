package ansi

// Strip returns text with every escape sequence removed. All other
// characters keep their order.
func (p *Processor) Strip(text string) string {
	if text == "" {
		return ""
	}
	return p.re.ReplaceAllLiteralString(text, "")
}

// Strip removes strict-grammar escape sequences from text.
func Strip(text string) string {
	return defaultProcessor.Strip(text)
}

// StripNullable is Strip for callers whose input may be absent, such as
// decoded JSON. A nil text fails with ErrInvalidInput.
func (p *Processor) StripNullable(text *string) (string, error) {
	if text == nil {
		return "", ErrInvalidInput
	}
	return p.Strip(*text), nil
}

// StripNullable strips with the strict grammar; nil fails with ErrInvalidInput.
func StripNullable(text *string) (string, error) {
	return defaultProcessor.StripNullable(text)
}
