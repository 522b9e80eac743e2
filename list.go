package scatter

import (
	"fmt"
	"io"

	"github.com/valyala/fasttemplate"
)

// DefaultListTemplate describes a car record. Placeholders name columns.
const DefaultListTemplate = "{Model}: MPG {MPG}, Price ${Price}, Engine Size {EngineSizeCI}"

// ListView is the text list of the selected records. Every update
// replaces all lines.
type ListView struct {
	tmpl  *fasttemplate.Template
	lines []string
}

// NewListView parses a template with {Column} placeholders.
func NewListView(template string) (*ListView, error) {
	t, err := fasttemplate.NewTemplate(template, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("parse list template: %w", err)
	}
	return &ListView{tmpl: t}, nil
}

// Line renders the line for one record. Missing columns render empty.
func (l *ListView) Line(r Record) string {
	return l.tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		return io.WriteString(w, r.Text(tag))
	})
}

// Replace discards the current lines and renders one per record.
func (l *ListView) Replace(records []Record) {
	l.lines = l.lines[:0]
	for _, r := range records {
		l.lines = append(l.lines, l.Line(r))
	}
}

func (l *ListView) Lines() []string {
	return append([]string(nil), l.lines...)
}

func (l *ListView) Len() int { return len(l.lines) }
