// Package source resolves the documents ansicolor works on: files, stdin,
// file:// URIs and preview URIs that point back at another source.
package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Scheme is the URI scheme of preview documents.
	Scheme = "ansicolor"

	// StdinName names documents read from standard input.
	StdinName = "stdin"

	nonceAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	nonceLength   = 8
)

// ErrNotPreviewURI indicates a URI without the ansicolor scheme or with a
// malformed query.
var ErrNotPreviewURI = errors.New("not an ansicolor preview URI")

// Document is text loaded from a source.
type Document struct {
	// Name is the display name: the file's base name or "stdin".
	Name string
	// Path is the file path, empty for stdin.
	Path string
	Text string
}

// Title returns prefix followed by the document name.
func (d Document) Title(prefix string) string {
	return prefix + d.Name
}

// IsFile reports whether the document came from a file that can be written back.
func (d Document) IsFile() bool {
	return d.Path != ""
}

// NewPreviewURI wraps src in a preview URI. The random nonce makes every
// preview URI distinct even for the same source.
func NewPreviewURI(src string) (string, error) {
	nonce, err := gonanoid.Generate(nonceAlphabet, nonceLength)
	if err != nil {
		return "", fmt.Errorf("generating preview nonce: %w", err)
	}
	query, err := json.Marshal([]string{src, nonce})
	if err != nil {
		return "", err
	}
	return Scheme + ":ref?" + url.QueryEscape(string(query)), nil
}

// IsPreviewURI reports whether s uses the preview scheme.
func IsPreviewURI(s string) bool {
	return strings.HasPrefix(s, Scheme+":")
}

// ResolvePreviewURI returns the source a preview URI was created for.
func ResolvePreviewURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != Scheme {
		return "", fmt.Errorf("%w: %q", ErrNotPreviewURI, uri)
	}
	query, err := url.QueryUnescape(u.RawQuery)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotPreviewURI, err)
	}
	var parts []string
	if err := json.Unmarshal([]byte(query), &parts); err != nil || len(parts) == 0 || parts[0] == "" {
		return "", fmt.Errorf("%w: query must be a JSON array starting with the source", ErrNotPreviewURI)
	}
	return parts[0], nil
}

// Load reads the document named by arg. "" and "-" read stdin; preview URIs
// are resolved first; file:// URIs and plain paths read the file.
func Load(arg string, stdin io.Reader) (Document, error) {
	switch {
	case arg == "" || arg == "-":
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return Document{}, fmt.Errorf("reading stdin: %w", err)
		}
		return Document{Name: StdinName, Text: string(data)}, nil
	case IsPreviewURI(arg):
		src, err := ResolvePreviewURI(arg)
		if err != nil {
			return Document{}, err
		}
		if IsPreviewURI(src) {
			return Document{}, fmt.Errorf("%w: nested preview URI", ErrNotPreviewURI)
		}
		return Load(src, stdin)
	case strings.HasPrefix(arg, "file://"):
		u, err := url.Parse(arg)
		if err != nil {
			return Document{}, fmt.Errorf("parsing %q: %w", arg, err)
		}
		return loadFile(u.Path)
	default:
		return loadFile(arg)
	}
}

func loadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Document{Name: filepath.Base(path), Path: path, Text: string(data)}, nil
}

// WriteBack replaces the file contents of doc with text, keeping its mode.
func WriteBack(doc Document, text string) error {
	if !doc.IsFile() {
		return fmt.Errorf("%s is not a file", doc.Name)
	}
	info, err := os.Stat(doc.Path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", doc.Path, err)
	}
	if err := os.WriteFile(doc.Path, []byte(text), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", doc.Path, err)
	}
	return nil
}
