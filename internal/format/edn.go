package format

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// WriteEDN writes v as EDN. Values go through encoding/json first so json tags decide the
// field names; keys become kebab-case keywords (emotionId -> :emotion-id).
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}

	e := &ednWriter{pretty: pretty}
	e.value(x, 0)
	e.buf.WriteByte('\n')
	_, err = w.Write(e.buf.Bytes())
	return err
}

type ednWriter struct {
	buf    bytes.Buffer
	pretty bool
}

func (e *ednWriter) value(v any, level int) {
	switch t := v.(type) {
	case nil:
		e.buf.WriteString("nil")
	case bool:
		e.buf.WriteString(strconv.FormatBool(t))
	case json.Number:
		e.buf.WriteString(t.String())
	case string:
		e.buf.WriteString(strconv.Quote(t))
	case []any:
		items := make([]func(), len(t))
		for i := range t {
			x := t[i]
			items[i] = func() { e.value(x, level+1) }
		}
		e.coll('[', ']', items, level)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]func(), len(keys))
		for i, k := range keys {
			k := k
			items[i] = func() {
				e.buf.WriteString(keyword(k))
				e.buf.WriteByte(' ')
				e.value(t[k], level+1)
			}
		}
		e.coll('{', '}', items, level)
	}
}

// coll writes a delimited collection, one item per line when pretty.
func (e *ednWriter) coll(open, closing byte, items []func(), level int) {
	e.buf.WriteByte(open)
	for i, item := range items {
		if e.pretty {
			e.buf.WriteByte('\n')
			e.indent(level + 1)
		} else if i > 0 {
			e.buf.WriteByte(' ')
		}
		item()
	}
	if e.pretty && len(items) > 0 {
		e.buf.WriteByte('\n')
		e.indent(level)
	}
	e.buf.WriteByte(closing)
}

func (e *ednWriter) indent(level int) {
	e.buf.WriteString(strings.Repeat("  ", level))
}

func keyword(k string) string {
	var sb strings.Builder
	sb.WriteByte(':')
	for i, r := range strings.TrimSpace(k) {
		switch {
		case r == ' ' || r == '_':
			sb.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
