package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Formats accepted by Write.
var Formats = []string{"json", "edn", "text"}

// Table is implemented by payloads that have a tabular text rendering.
type Table interface {
	Headers() []string
	Rows() [][]string
}

// Write writes v in the requested format.
//
// json and edn wrap v in a {"data": v} envelope. text renders v directly: a Table as a
// bordered table, a fmt.Stringer as-is, anything else as indented JSON.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, envelope(v), pretty)
	case "edn":
		return WriteEDN(w, envelope(v), pretty)
	case "text":
		return WriteText(w, v)
	default:
		return fmt.Errorf("unknown format: %s (want %s)", format, strings.Join(Formats, "|"))
	}
}

func envelope(v any) map[string]any {
	return map[string]any{"data": v}
}

// WriteJSON writes strict JSON, one document per line unless pretty.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

func WriteText(w io.Writer, v any) error {
	switch t := v.(type) {
	case Table:
		_, err := fmt.Fprintln(w, renderTable(t))
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(w, t.String())
		return err
	default:
		return WriteJSON(w, v, true)
	}
}

func renderTable(t Table) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Headers()...).
		Rows(t.Rows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return tbl.Render()
}
