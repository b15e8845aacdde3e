// Package diag renders caret diagnostics for source views:
//
//	error: unexpected character
//	 --> 2:7
//	  |
//	2 | let x = @;
//	  |         ^ here
package diag

import (
	"strconv"
	"strings"

	"github.com/iw2rmb/srcview/internal/grapheme"
	"github.com/iw2rmb/srcview/source"
)

// Options configures Render.
type Options struct {
	Severity string // default: "error"
	TabWidth int    // default: 4
	Label    string // optional text after the carets
	Style    Style
}

func (o Options) withDefaults() Options {
	if o.Severity == "" {
		o.Severity = "error"
	}
	if o.TabWidth <= 0 {
		o.TabWidth = 4
	}
	return o
}

// Render formats msg against the location of v.
//
// The underline covers the part of v on its first line and is at least one
// cell wide. Views without provenance render the message and their text.
func Render(v source.View, msg string, opt Options) string {
	opt = opt.withDefaults()
	st := opt.Style

	var sb strings.Builder
	sb.WriteString(st.Severity.Render(opt.Severity + ":"))
	if msg != "" {
		sb.WriteByte(' ')
		sb.WriteString(st.Message.Render(msg))
	}

	r, ok := v.SourceRange()
	if !ok {
		if v.Text() != "" {
			sb.WriteString("\n  ")
			sb.WriteString(st.Gutter.Render("= "))
			sb.WriteString(st.Source.Render(strconv.Quote(v.Text())))
		}
		return sb.String()
	}

	owner := v.Owner()
	start, err := owner.Position(r.Start)
	if err != nil {
		return sb.String()
	}
	lineRange, _ := owner.LineRange(start.Line)
	line := owner.Text()[lineRange.Start:lineRange.End]

	// A view starting on a line terminator is marked just past the line text.
	from := min(r.Start, lineRange.End) - lineRange.Start
	to := max(min(r.End, lineRange.End)-lineRange.Start, from)
	before := line[:from]
	marked := line[from:to]

	col := grapheme.Width(before, 0, opt.TabWidth)
	width := max(grapheme.Width(marked, col, opt.TabWidth), 1)

	num := strconv.Itoa(start.Line + 1)
	pad := strings.Repeat(" ", len(num))

	sb.WriteByte('\n')
	sb.WriteString(pad)
	sb.WriteString(st.Gutter.Render("-->"))
	sb.WriteByte(' ')
	sb.WriteString(st.Location.Render(start.String()))

	sb.WriteByte('\n')
	sb.WriteString(pad)
	sb.WriteString(st.Gutter.Render(" |"))

	sb.WriteByte('\n')
	sb.WriteString(st.Gutter.Render(num + " |"))
	if line != "" {
		sb.WriteByte(' ')
		sb.WriteString(st.Source.Render(expandTabs(line, opt.TabWidth)))
	}

	sb.WriteByte('\n')
	sb.WriteString(pad)
	sb.WriteString(st.Gutter.Render(" |"))
	sb.WriteByte(' ')
	sb.WriteString(strings.Repeat(" ", col))
	sb.WriteString(st.Caret.Render(strings.Repeat("^", width)))
	if opt.Label != "" {
		sb.WriteByte(' ')
		sb.WriteString(st.Label.Render(opt.Label))
	}
	return sb.String()
}

func expandTabs(line string, tabWidth int) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var sb strings.Builder
	col := 0
	for _, c := range grapheme.Split(line) {
		w := grapheme.Width(c, col, tabWidth)
		if c == "\t" {
			sb.WriteString(strings.Repeat(" ", w))
		} else {
			sb.WriteString(c)
		}
		col += w
	}
	return sb.String()
}
