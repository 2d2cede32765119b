// Package output renders fact lists for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON   Format = "json"
	YAML   Format = "yaml"
	Table  Format = "table"
	Detail Format = "detail"
)

var formats = []Format{JSON, YAML, Table, Detail}

func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(formats, f) {
		return "", fmt.Errorf("unknown output format %q (want json, yaml, table or detail)", s)
	}
	return f, nil
}

// Tabular is implemented by values that can be shown as table or detail views.
// The first column titles each detail section.
type Tabular interface {
	Headers() []string
	Rows() [][]string
}

// Write renders v to w in format f.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case Table, Detail:
		t, ok := v.(Tabular)
		if !ok {
			return fmt.Errorf("%s output is not supported for %T", f, v)
		}
		s := renderTable(t)
		if f == Detail {
			s = renderDetail(t)
		}
		_, err := lipgloss.Fprintln(w, s)
		return err
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

func renderTable(t Tabular) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return CellStyle
		}).
		Headers(t.Headers()...).
		Rows(t.Rows()...).
		String()
}

func renderDetail(t Tabular) string {
	headers := t.Headers()
	width := 0
	for _, h := range headers {
		width = max(width, len(h))
	}

	db := NewDetailBuilder(width+1, LabelStyle, SectionStyle)
	for i, row := range t.Rows() {
		if i > 0 {
			db.Blank()
		}
		if len(row) > 0 {
			db.Section(row[0])
		}
		for j, cell := range row {
			if j < len(headers) {
				db.Row(headers[j], cell)
			}
		}
	}
	return db.String()
}
