// Package offcanvas provides a side panel that slides over the content.
//
// The panel owns its open state, the cursor over its rows and the scroll
// offset; callers supply the rows on every render.
package offcanvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderLines is the smallest header: one title row and its separator.
const HeaderLines = 2

// CloseIcon is drawn in the header's close button.
const CloseIcon = "✕"

// Model holds the panel state.
type Model struct {
	open   bool
	cursor int
	offset int
}

// New returns a closed panel.
func New() Model {
	return Model{}
}

// IsOpen reports whether the panel is shown.
func (m Model) IsOpen() bool { return m.open }

// Cursor returns the index of the focused row.
func (m Model) Cursor() int { return m.cursor }

// Offset returns the index of the first visible row.
func (m Model) Offset() int { return m.offset }

// Show opens the panel.
func (m Model) Show() Model {
	m.open = true
	return m
}

// Hide closes the panel and forgets the cursor and scroll position.
func (m Model) Hide() Model {
	return Model{}
}

// Toggle flips the open state.
func (m Model) Toggle() Model {
	if m.open {
		return m.Hide()
	}
	return m.Show()
}

// MoveCursor moves the cursor by delta within count rows, scrolling so the
// cursor stays inside a window of visible rows.
func (m Model) MoveCursor(delta, count, visible int) Model {
	return m.SetCursor(m.cursor+delta, count, visible)
}

// SetCursor places the cursor at index, clamped to the rows.
func (m Model) SetCursor(index, count, visible int) Model {
	if count <= 0 {
		m.cursor, m.offset = 0, 0
		return m
	}
	m.cursor = min(max(index, 0), count-1)
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	m.offset = min(m.offset, max(count-visible, 0))
	return m
}

// Props defines the properties for the panel.
type Props struct {
	Title      string
	Rows       []string
	Width      int
	Height     int
	Border     lipgloss.Color
	TitleColor lipgloss.Color
}

// HeaderHeight returns the lines taken by the wrapped title and the separator.
func (p Props) HeaderHeight() int {
	return lipgloss.Height(p.title()) + 1
}

// BodyHeight returns how many rows fit below the header.
func (p Props) BodyHeight() int {
	return max(p.Height-p.HeaderHeight(), 1)
}

func (p Props) title() string {
	innerWidth := max(p.Width-1, 1)
	titleWidth := max(innerWidth-lipgloss.Width(CloseIcon)-2, 1)
	return lipgloss.NewStyle().
		Width(titleWidth).
		Bold(true).
		Foreground(p.TitleColor).
		Render(p.Title)
}

// Render renders the panel, or "" while it is closed.
func Render(m Model, p Props) string {
	if !m.open {
		return ""
	}

	innerWidth := max(p.Width-1, 1)
	header := lipgloss.JoinHorizontal(lipgloss.Top, p.title(), " ", CloseIcon)
	separator := strings.Repeat("─", innerWidth)

	visible := p.BodyHeight()
	end := min(m.offset+visible, len(p.Rows))
	var body string
	if m.offset < end {
		body = strings.Join(p.Rows[m.offset:end], "\n")
	}

	return lipgloss.NewStyle().
		Width(innerWidth).
		Height(max(p.Height, p.HeaderHeight()+1)).
		MaxHeight(max(p.Height, p.HeaderHeight()+1)).
		Border(lipgloss.Border{Left: "│"}, false, false, false, true).
		BorderForeground(p.Border).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, separator, body))
}
