// Package report renders engine results as the markdown the CLI prints.
//
// This file implements a small fluent builder for markdown fragments so the
// renderers compose headings, lines and tables without sprinkling string
// concatenation everywhere.
package report

import (
	"fmt"
	"strings"
)

// Builder accumulates a markdown document.
type Builder struct {
	sb strings.Builder
}

// NewBuilder creates an empty report builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Heading appends a markdown heading of the given level.
func (b *Builder) Heading(level int, text string) *Builder {
	b.sb.WriteString("\n")
	b.sb.WriteString(strings.Repeat("#", level))
	b.sb.WriteString(" ")
	b.sb.WriteString(text)
	b.sb.WriteString("\n\n")
	return b
}

// Line appends one formatted line.
func (b *Builder) Line(format string, args ...any) *Builder {
	fmt.Fprintf(&b.sb, format, args...)
	b.sb.WriteString("\n")
	return b
}

// Blank appends an empty line.
func (b *Builder) Blank() *Builder {
	b.sb.WriteString("\n")
	return b
}

// Table appends a markdown table with the given header and rows.
func (b *Builder) Table(header []string, rows [][]string) *Builder {
	b.row(header)
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = strings.Repeat("-", len([]rune(header[i]))+2)
	}
	b.row(sep)
	for _, r := range rows {
		b.row(r)
	}
	return b
}

func (b *Builder) row(cells []string) {
	b.sb.WriteString("|")
	for _, c := range cells {
		b.sb.WriteString(" ")
		b.sb.WriteString(c)
		b.sb.WriteString(" |")
	}
	b.sb.WriteString("\n")
}

// String returns the accumulated markdown.
func (b *Builder) String() string {
	return b.sb.String()
}
