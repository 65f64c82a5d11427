package markup

import (
	"errors"
	"strings"
	"testing"

	"github.com/chris-regnier/ansicolor/internal/ansi"
	"github.com/sebdah/goldie/v2"
)

func TestRender_Snapshots(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		title string
	}{
		{"green_ok", "\x1b[32mOK\x1b[0m", ""},
		{"bright_warn", "\x1b[33;1mWarn\x1b[0m", ""},
		{"plain_text", "plain text", ""},
		{"empty", "", ""},
		{"multiline", "\x1b[31mfirst\nsecond\x1b[0m tail\n", ""},
		{"escaped", "\x1b[36m<b> & \"q\" 'x'\x1b[0m", ""},
		{"titled", "\x1b[34mbuild ok\x1b[0m", "Preview build.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := New(Options{Title: tt.title}).Render(tt.text)

			g := goldie.New(t)
			g.Assert(t, tt.name, []byte(out))
		})
	}
}

func TestRenderGreenContainer(t *testing.T) {
	out := Render("\x1b[32mOK\x1b[0m")
	if !strings.Contains(out, `<span class="green">OK</span>`) {
		t.Errorf("expected green container wrapping OK, got:\n%s", out)
	}
}

func TestRenderBrightContainer(t *testing.T) {
	out := Render("\x1b[33;1mWarn\x1b[0m")
	if !strings.Contains(out, `<span class="bright yellow">Warn</span>`) {
		t.Errorf("expected bright yellow container, got:\n%s", out)
	}
}

func TestRenderPlainTextSingleContainer(t *testing.T) {
	r := New(Options{})
	if got, want := r.Content("plain text"), "<span class=\"\">plain text</span>\n"; got != want {
		t.Errorf("Content = %q, want %q", got, want)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	r := New(Options{})
	if got := r.Content(""); got != "" {
		t.Errorf("expected empty content, got %q", got)
	}
	out := r.Render("")
	if !strings.Contains(out, "<body>\n</body>") {
		t.Errorf("expected empty body, got:\n%s", out)
	}
}

func TestRenderDropsEmptySegments(t *testing.T) {
	got := New(Options{}).Content("\x1b[1m\x1b[31mred\x1b[0m")
	if want := "<span class=\"red\">red</span>\n"; got != want {
		t.Errorf("Content = %q, want %q", got, want)
	}
}

func TestRenderDeclaresEveryColor(t *testing.T) {
	out := Render("")
	for _, name := range ansi.ColorNames() {
		if !strings.Contains(out, "."+name+" { color: "+name+" }") {
			t.Errorf("missing style rule for %s", name)
		}
	}
	if !strings.Contains(out, ".bright { font-weight: bold }") {
		t.Error("missing bright rule")
	}
	for _, forbidden := range []string{"<script", "src=", "href="} {
		if strings.Contains(out, forbidden) {
			t.Errorf("document must be standalone, found %q", forbidden)
		}
	}
}

func TestRenderLenientGrammar(t *testing.T) {
	r := New(Options{Grammar: ansi.GrammarLenient})
	if got, want := r.Content("[31mred"), "<span class=\"red\">red</span>\n"; got != want {
		t.Errorf("lenient Content = %q, want %q", got, want)
	}
	if got, want := New(Options{}).Content("[31mred"), "<span class=\"\">[31mred</span>\n"; got != want {
		t.Errorf("strict Content = %q, want %q", got, want)
	}
}

func TestRenderNullable(t *testing.T) {
	if _, err := RenderNullable(nil); !errors.Is(err, ansi.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	text := "\x1b[35mhi\x1b[0m"
	out, err := RenderNullable(&text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `<span class="magenta">hi</span>`) {
		t.Errorf("unexpected document:\n%s", out)
	}
}

func TestRenderToWriter(t *testing.T) {
	var sb strings.Builder
	if err := New(Options{Title: "t"}).RenderTo(&sb, "x"); err != nil {
		t.Fatalf("RenderTo: %v", err)
	}
	if !strings.Contains(sb.String(), "<title>t</title>") {
		t.Errorf("expected title, got:\n%s", sb.String())
	}
}
