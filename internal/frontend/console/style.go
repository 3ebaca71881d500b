package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used for each kind of output.
type palette struct {
	title   lipgloss.Style
	text    lipgloss.Style
	prompt  lipgloss.Style
	options lipgloss.Style
	item    lipgloss.Style
	enemy   lipgloss.Style
	good    lipgloss.Style
	danger  lipgloss.Style
	hint    lipgloss.Style
	art     lipgloss.Style
	rule    lipgloss.Style
}

// newPalette builds the styles for out. With color disabled every style is
// plain, so rendering never emits escape sequences.
func newPalette(out io.Writer, color bool) palette {
	r := lipgloss.NewRenderer(out)
	plain := r.NewStyle()
	if !color {
		return palette{
			title: plain, text: plain, prompt: plain, options: plain,
			item: plain, enemy: plain, good: plain, danger: plain,
			hint: plain, art: plain, rule: plain,
		}
	}
	return palette{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		text:    r.NewStyle().Foreground(lipgloss.Color("15")),
		prompt:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		options: r.NewStyle().Faint(true),
		item:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		enemy:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		good:    r.NewStyle().Foreground(lipgloss.Color("10")),
		danger:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		hint:    r.NewStyle().Italic(true).Foreground(lipgloss.Color("12")),
		art:     r.NewStyle().Foreground(lipgloss.Color("3")),
		rule:    r.NewStyle().Faint(true),
	}
}
