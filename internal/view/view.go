// Package view renders dashboard panels as plain-text or HTML tables.
package view

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
	"text/tabwriter"

	"saapadu/shared/constant"
)

type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

var ErrUnknownFormat = errors.New("unknown view format")

// ParseFormat defaults to text.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
}

func (f Format) ContentType() string {
	if f == FormatHTML {
		return constant.ContentTypeHTML
	}

	return constant.ContentTypeText
}

// Table is one rendered panel. A table without rows renders its Placeholder instead.
type Table struct {
	Title       string     `json:"title"`
	Columns     []string   `json:"columns"`
	Rows        [][]string `json:"rows"`
	Placeholder string     `json:"placeholder"`
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

func (t Table) Render(w io.Writer, format Format) error {
	if format == FormatHTML {
		return t.WriteHTML(w)
	}

	return t.WriteText(w)
}

func (t Table) WriteText(w io.Writer) error {
	if t.Title != constant.Empty {
		if _, err := fmt.Fprintf(w, "%s\n\n", t.Title); err != nil {
			return fmt.Errorf("failed to write title: %w", err)
		}
	}

	if t.Empty() {
		if _, err := fmt.Fprintln(w, t.Placeholder); err != nil {
			return fmt.Errorf("failed to write placeholder: %w", err)
		}

		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if len(t.Columns) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	}

	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return nil
}

var tableTemplate = template.Must(template.New("table").Parse(`<section class="panel">
{{- if .Title}}
<h3>{{.Title}}</h3>
{{- end}}
{{- if .Empty}}
<p class="empty-message">{{.Placeholder}}</p>
{{- else}}
<table>
{{- if .Columns}}
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
{{- end}}
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- end}}
</section>
`))

// WriteHTML writes an escaped HTML fragment.
func (t Table) WriteHTML(w io.Writer) error {
	if err := tableTemplate.Execute(w, t); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
