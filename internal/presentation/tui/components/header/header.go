// Package header shows the loaded source and the routed subset.
package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Source  string
	Subset  string
}

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(fmt.Sprintf("📂 %s\n🏷️  %s", p.Source, p.Subset))
}
