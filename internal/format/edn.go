package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes v as EDN. Values go through JSON first so struct tags decide
// key names; maps become keyword maps with sorted keys.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}

	var buf bytes.Buffer
	p := ednPrinter{buf: &buf, pretty: pretty}
	p.value(x, 0)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

type ednPrinter struct {
	buf    *bytes.Buffer
	pretty bool
}

func (p ednPrinter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		p.buf.WriteString("nil")
	case bool:
		p.buf.WriteString(strconv.FormatBool(t))
	case string:
		p.buf.WriteString(strconv.Quote(t))
	case json.Number:
		p.buf.WriteString(t.String())
	case []any:
		p.seq('[', ']', len(t), depth, func(i int) { p.value(t[i], depth+1) })
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		p.seq('{', '}', len(keys), depth, func(i int) {
			p.buf.WriteString(ednKeyword(keys[i]))
			p.buf.WriteByte(' ')
			p.value(t[keys[i]], depth+1)
		})
	default:
		p.buf.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

func (p ednPrinter) seq(openCh, closeCh byte, n, depth int, item func(int)) {
	p.buf.WriteByte(openCh)
	if n == 0 {
		p.buf.WriteByte(closeCh)
		return
	}
	for i := 0; i < n; i++ {
		switch {
		case p.pretty:
			p.buf.WriteByte('\n')
			p.buf.WriteString(strings.Repeat("  ", depth+1))
		case i > 0:
			p.buf.WriteByte(' ')
		}
		item(i)
	}
	if p.pretty {
		p.buf.WriteByte('\n')
		p.buf.WriteString(strings.Repeat("  ", depth))
	}
	p.buf.WriteByte(closeCh)
}

// ednKeyword turns a JSON key into an EDN keyword. camelCase becomes kebab-case.
func ednKeyword(s string) string {
	var b strings.Builder
	b.WriteByte(':')
	for i, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ' || r == '_':
			b.WriteByte('-')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
