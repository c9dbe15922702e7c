// Package tooltip renders short hints next to a target component.
package tooltip

import "github.com/charmbracelet/lipgloss"

// Placement is the side of the target the tooltip is drawn on.
type Placement int

const (
	Top Placement = iota
	Left
	Right
	Bottom
)

// Props defines the properties for the tooltip component.
type Props struct {
	Visible    bool
	Text       string
	Placement  Placement
	Background lipgloss.Color
}

// Render renders the tooltip bubble alone.
func Render(p Props) string {
	if !p.Visible || p.Text == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Background).
		Foreground(lipgloss.Color("255")).
		Render(p.Text)
}

// Attach draws the tooltip next to target. A hidden tooltip returns target unchanged.
func Attach(target string, p Props) string {
	tip := Render(p)
	if tip == "" {
		return target
	}
	switch p.Placement {
	case Left:
		return lipgloss.JoinHorizontal(lipgloss.Center, tip, " ", target)
	case Right:
		return lipgloss.JoinHorizontal(lipgloss.Center, target, " ", tip)
	case Bottom:
		return lipgloss.JoinVertical(lipgloss.Right, target, tip)
	default:
		return lipgloss.JoinVertical(lipgloss.Right, tip, target)
	}
}
