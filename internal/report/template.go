package report

import (
	"io"
	"text/template"

	"listcmp/internal/classify"

	"github.com/Masterminds/sprig/v3"
)

// Printer writes a Report to w.
type Printer interface {
	Print(w io.Writer, r Report) error
}

// PrinterFunc adapts a plain function to Printer.
type PrinterFunc func(io.Writer, Report) error

func (p PrinterFunc) Print(w io.Writer, r Report) error {
	return p(w, r)
}

// TemplatePrinter executes a user supplied template.
type TemplatePrinter struct {
	template *template.Template
}

func (t TemplatePrinter) Print(w io.Writer, r Report) error {
	return t.template.Execute(w, r)
}

// Execute runs the template over arbitrary data.
func (t TemplatePrinter) Execute(w io.Writer, data any) error {
	return t.template.Execute(w, data)
}

// NewTemplatePrinter parses text as a Go template with the sprig function map.
// Inside the template the dot is the Report; the "difficulty" and "topic"
// helpers annotate a single title using c (nil means the built-in table).
func NewTemplatePrinter(text string, c *classify.Classifier) (TemplatePrinter, error) {
	if c == nil {
		c = classify.Default()
	}
	funcs := sprig.TxtFuncMap()
	funcs["difficulty"] = func(title string) string {
		return classify.ClassifyDifficulty(title).String()
	}
	funcs["topic"] = func(title string) string {
		return c.Topic(title).String()
	}
	tmpl, err := template.New("report").Funcs(funcs).Parse(text)
	if err != nil {
		return TemplatePrinter{}, err
	}
	return TemplatePrinter{template: tmpl}, nil
}
