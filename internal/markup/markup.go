// Package markup renders text containing ANSI color codes as a standalone
// HTML document with one styled span per line of each colored run.
package markup

import (
	"html/template"
	"io"
	"strings"

	"github.com/chris-regnier/ansicolor/internal/ansi"
)

// Options configures a Renderer.
type Options struct {
	// Title becomes the document <title> when non-empty.
	Title string

	// Grammar selects the escape sequence discipline.
	Grammar ansi.Grammar
}

// Renderer converts ANSI-colored text to HTML. It is safe for concurrent use.
type Renderer struct {
	proc  *ansi.Processor
	title string
}

// New returns a Renderer for the given options.
func New(opts Options) *Renderer {
	return &Renderer{proc: ansi.New(opts.Grammar), title: opts.Title}
}

var defaultRenderer = New(Options{})

// Render converts text to an HTML document using the strict grammar.
func Render(text string) string {
	return defaultRenderer.Render(text)
}

// RenderNullable is Render for callers whose input may be absent.
// A nil text fails with ansi.ErrInvalidInput.
func RenderNullable(text *string) (string, error) {
	if text == nil {
		return "", ansi.ErrInvalidInput
	}
	return Render(*text), nil
}

// Render returns the complete HTML document for text.
func (r *Renderer) Render(text string) string {
	var sb strings.Builder
	if err := r.RenderTo(&sb, text); err != nil {
		// strings.Builder never fails a write and the template is fixed
		panic(err)
	}
	return sb.String()
}

// RenderTo writes the HTML document for text to w.
func (r *Renderer) RenderTo(w io.Writer, text string) error {
	return documentTmpl.Execute(w, document{
		Title:   r.title,
		Content: template.HTML(r.Content(text)),
	})
}

// Content returns only the body markup: one span per line of every
// non-empty segment, lines joined by <br>.
func (r *Renderer) Content(text string) string {
	var sb strings.Builder
	for _, seg := range ansi.NonEmpty(r.proc.Split(text)) {
		sb.WriteString(wrapSegment(seg.Text, seg.Class()))
	}
	return sb.String()
}

// wrapSegment wraps each line of text in a span carrying class.
func wrapSegment(text, class string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = `<span class="` + class + `">` + template.HTMLEscapeString(line) + "</span>\n"
	}
	return strings.Join(lines, "<br>\n")
}

type document struct {
	Title   string
	Content template.HTML
}

var documentTmpl = template.Must(template.New("document").Parse(documentTemplate))

// documentTemplate declares one rule per entry of ansi.ColorNames plus the
// bright modifier. It references no external resources and has no scripts.
const documentTemplate = `<html>
<head>
<meta charset="utf-8">
{{if .Title}}<title>{{.Title}}</title>
{{end}}<style>
  body { font-family: monospace }
  .black { color: black }
  .red { color: red }
  .green { color: green }
  .yellow { color: yellow }
  .blue { color: blue }
  .magenta { color: magenta }
  .cyan { color: cyan }
  .white { color: white }
  .bright { font-weight: bold }
</style>
</head>
<body>
{{.Content}}</body>
</html>
`
