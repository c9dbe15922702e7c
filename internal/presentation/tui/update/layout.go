package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/substats/internal/presentation/tui/metrics"
	"github.com/tesso57/substats/internal/presentation/tui/state"
)

type layoutMetrics struct {
	contentHeight  int
	mainWidth      int
	viewportHeight int
}

// UpdateSizes fits the viewport to the space left by the bar, the panel and the footer.
func UpdateSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}
	l := buildLayoutMetrics(s)
	s.Viewport.Width = max(l.mainWidth-metrics.MainPaddingLeft, 1)
	s.Viewport.Height = l.viewportHeight
	s.TextInput.Width = min(48, max(s.Width-12, 10))
}

// MainWidth returns the width left for the main area.
func MainWidth(s *state.ModelState) int {
	return buildLayoutMetrics(s).mainWidth
}

// ContentHeight returns the height between the bar and the footer.
func ContentHeight(s *state.ModelState) int {
	return buildLayoutMetrics(s).contentHeight
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	contentHeight := clampMin(s.Height-metrics.BarLines-footerHeight(s), 1)
	mainWidth := clampMin(s.Width-s.NavBar.PanelWidth(s.Width), 1)
	return layoutMetrics{
		contentHeight:  contentHeight,
		mainWidth:      mainWidth,
		viewportHeight: clampMin(contentHeight-metrics.HeaderLines, 1),
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	helpText := state.FooterHelpText(s.Help, s.Keys)
	return lipgloss.Height(state.FooterText(s.Session, s.Loading, s.StatusMessage, helpText))
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
