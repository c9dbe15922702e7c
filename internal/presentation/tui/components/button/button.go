// Package button provides a single-line labelled button.
package button

import "github.com/charmbracelet/lipgloss"

// Variant selects the button colors.
type Variant int

const (
	Primary Variant = iota
	Secondary
)

// Props defines the properties for the button component.
type Props struct {
	ID      string
	Label   string
	Variant Variant
	Focused bool
	Active  bool
	Width   int
	Accent  lipgloss.Color
	Muted   lipgloss.Color
}

// Render renders the button component.
func Render(p Props) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if p.Width > 0 {
		style = style.Width(p.Width)
	}

	bg := p.Accent
	if p.Variant == Secondary {
		bg = p.Muted
	}
	style = style.Background(bg).Foreground(lipgloss.Color("255"))

	if p.Active {
		style = style.Bold(true)
	}
	marker := "  "
	if p.Focused {
		marker = "▸ "
		style = style.Background(p.Accent)
	}
	return marker + style.Render(p.Label)
}
