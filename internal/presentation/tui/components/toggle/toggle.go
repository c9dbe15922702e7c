// Package toggle provides the collapsed-bar toggle control.
package toggle

import "github.com/charmbracelet/lipgloss"

// Icon is drawn inside the control.
const Icon = "☰"

// Props defines the properties for the toggle component.
type Props struct {
	Focused  bool
	Expanded bool
	Accent   lipgloss.Color
}

// Render renders the toggle component.
func Render(p Props) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if p.Focused {
		style = style.Foreground(p.Accent).Bold(true)
	}
	if p.Expanded {
		style = style.Reverse(true)
	}
	return style.Render(Icon)
}
