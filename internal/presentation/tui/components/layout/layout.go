// Package layout provides the main layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Bar    string
	Main   string
	Panel  string
	Footer string
}

// Render stacks the bar, the content row and the footer. The panel, when
// present, sits at the right end of the content row.
func Render(p Props) string {
	content := p.Main
	if p.Panel != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, p.Main, p.Panel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, p.Bar, content, p.Footer)
}
