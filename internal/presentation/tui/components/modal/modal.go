// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// OpenSource shows the load source dialog.
	OpenSource
	// Help shows the help dialog.
	Help
	// Quit asks for confirmation before leaving.
	Quit
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Body    string
	Width   int
	Height  int
}

// Render renders the modal component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	switch p.Kind {
	case OpenSource:
		style = style.Width(56).BorderForeground(lipgloss.Color("205"))
	case Quit:
		style = style.BorderForeground(lipgloss.Color("196"))
	}

	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, style.Render(p.Body))
}
