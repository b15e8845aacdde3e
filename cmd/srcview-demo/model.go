package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/srcview/diag"
	"github.com/iw2rmb/srcview/source"
)

type styles struct {
	token  lipgloss.Style
	status lipgloss.Style
	help   lipgloss.Style
	diag   diag.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		token:  r.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("231")),
		status: r.NewStyle().Foreground(lipgloss.Color("250")),
		help:   r.NewStyle().Foreground(lipgloss.Color("240")),
		diag:   diag.NewStyle(r),
	}
}

// step is one lexer result the user has walked to.
type step struct {
	tok Token
	err error
}

type model struct {
	cfg    Config
	keys   keyMap
	styles styles
	log    logrus.FieldLogger

	src   source.View
	lexer *Lexer
	steps []step
	cur   int // index into steps; -1 before the first token

	// Interned by position and by text, to contrast identity with content.
	positions map[source.Key]struct{}
	texts     map[string]struct{}
}

func newModel(src source.View, cfg Config, r *lipgloss.Renderer, log logrus.FieldLogger) model {
	m := model{
		cfg:    cfg,
		keys:   defaultKeyMap(),
		styles: newStyles(r),
		log:    log,
		src:    src,
	}
	m.reset()
	return m
}

func (m *model) reset() {
	m.lexer = NewLexer(m.src, m.cfg.Keywords)
	m.steps = nil
	m.cur = -1
	m.positions = map[source.Key]struct{}{}
	m.texts = map[string]struct{}{}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Next):
		m.next()
	case key.Matches(km, m.keys.Prev):
		if m.cur > 0 {
			m.cur--
		}
	case key.Matches(km, m.keys.Reset):
		m.reset()
		m.log.Debug("lexer reset")
	}
	return m, nil
}

func (m *model) next() {
	if m.cur+1 < len(m.steps) {
		m.cur++
		return
	}
	if n := len(m.steps); n > 0 && m.steps[n-1].tok.Kind == KindEOF {
		return
	}

	tok, err := m.lexer.Next()
	m.steps = append(m.steps, step{tok: tok, err: err})
	m.cur = len(m.steps) - 1

	fields := logrus.Fields{"kind": tok.Kind.String(), "text": tok.View.Text()}
	if r, ok := tok.View.SourceRange(); ok {
		fields["range"] = r.String()
	}
	if err != nil {
		m.log.WithFields(fields).WithError(err).Warn("lex error")
	} else {
		m.log.WithFields(fields).Debug("token")
	}

	if tok.Kind != KindEOF {
		m.positions[tok.View.Key()] = struct{}{}
		m.texts[tok.View.Text()] = struct{}{}
	}
}

func (m model) View() string {
	var sb strings.Builder

	var cur *step
	if m.cur >= 0 {
		cur = &m.steps[m.cur]
	}

	sb.WriteString(m.renderSource(cur))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.status.Render(m.status(cur)))
	if cur != nil && cur.err != nil {
		sb.WriteString("\n\n")
		sb.WriteString(diag.Render(cur.tok.View, cur.err.Error(), diag.Options{
			TabWidth: m.cfg.TabWidth,
			Style:    m.styles.diag,
		}))
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.help.Render(m.help()))
	sb.WriteByte('\n')
	return sb.String()
}

// renderSource prints the buffer with the current token highlighted.
func (m model) renderSource(cur *step) string {
	text := m.src.Owner().Text()
	if cur == nil {
		return text
	}
	r, ok := cur.tok.View.SourceRange()
	if !ok || r.IsEmpty() {
		return text
	}
	return text[:r.Start] + m.styles.token.Render(text[r.Start:r.End]) + text[r.End:]
}

func (m model) status(cur *step) string {
	if cur == nil {
		return "press → to lex the first token"
	}
	tok := cur.tok
	loc := "detached"
	if r, ok := tok.View.SourceRange(); ok {
		start, end, _ := tok.View.Position()
		loc = fmt.Sprintf("bytes %s  %s-%s", r, start, end)
	} else if tok.Kind == KindEOF {
		loc = "end of input"
	}
	return fmt.Sprintf("#%d %-8s %q  %s\ninterned: %d positions, %d distinct texts",
		m.cur+1, tok.Kind, tok.View.Text(), loc, len(m.positions), len(m.texts))
}

func (m model) help() string {
	parts := make([]string, 0, 4)
	for _, b := range m.keys.bindings() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
