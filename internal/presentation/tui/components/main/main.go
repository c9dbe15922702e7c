// Package mainview provides the main content area component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/substats/internal/presentation/tui/metrics"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
	// Dimmed fades the content while an overlay with a backdrop is shown.
	Dimmed bool
}

// Render renders the main view component.
func Render(p Props) string {
	mainStyle := lipgloss.NewStyle().
		Width(max(p.Width, 0)).
		Height(max(p.Height, 0)).
		MaxHeight(max(p.Height, 1)).
		PaddingLeft(metrics.MainPaddingLeft)
	if p.Dimmed {
		mainStyle = mainStyle.Faint(true)
	}

	content := p.Body
	if p.Header != "" {
		if p.Body != "" {
			content = p.Header + "\n" + p.Body
		} else {
			content = p.Header
		}
	}
	return mainStyle.Render(content)
}
