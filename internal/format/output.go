package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format names an output encoding selectable with --format.
type Format string

const (
	JSON     Format = "json"
	EDN      Format = "edn"
	Text     Format = "text"
	Markdown Format = "markdown"
	Template Format = "template"
)

// Formats lists every supported format in help order.
func Formats() []Format {
	return []Format{JSON, EDN, Text, Markdown, Template}
}

// UnknownFormatError reports a --format value outside Formats.
type UnknownFormatError struct {
	Name string
}

func (e UnknownFormatError) Error() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return fmt.Sprintf("unknown format: %q (want %s)", e.Name, strings.Join(names, "|"))
}

// Parse resolves a format name. Empty means JSON.
func Parse(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return JSON, nil
	}
	if s == "md" {
		return Markdown, nil
	}
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", UnknownFormatError{Name: s}
}

// Structured reports whether f is handled by Write.
func (f Format) Structured() bool {
	return f == JSON || f == EDN
}

// Envelope is the top-level shape of every structured payload.
type Envelope struct {
	Data any `json:"data"`
}

// Write wraps v in an Envelope and encodes it as json or edn.
func Write(w io.Writer, v any, f Format, pretty bool) error {
	env := Envelope{Data: v}
	switch f {
	case "", JSON:
		return WriteJSON(w, env, pretty)
	case EDN:
		return WriteEDN(w, env, pretty)
	default:
		return fmt.Errorf("format %q is not a structured format", f)
	}
}

// WriteJSON writes v as a single JSON document followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
