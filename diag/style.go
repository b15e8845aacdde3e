package diag

import "github.com/charmbracelet/lipgloss"

// Style controls how a diagnostic is rendered. The zero value renders plain
// text.
type Style struct {
	Severity lipgloss.Style
	Message  lipgloss.Style
	Location lipgloss.Style
	Gutter   lipgloss.Style
	Source   lipgloss.Style
	Caret    lipgloss.Style
	Label    lipgloss.Style
}

// DefaultStyle returns colored styles bound to the default renderer.
func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer())
}

// NewStyle returns colored styles bound to r.
func NewStyle(r *lipgloss.Renderer) Style {
	accent := r.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	gutter := r.NewStyle().Foreground(lipgloss.Color("39"))
	return Style{
		Severity: accent,
		Message:  r.NewStyle().Bold(true),
		Location: gutter,
		Gutter:   gutter,
		Source:   r.NewStyle(),
		Caret:    accent,
		Label:    r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// PlainStyle returns styles that add no escape sequences.
func PlainStyle() Style {
	return Style{}
}
