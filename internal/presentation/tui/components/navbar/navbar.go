// Package navbar provides the collapsible subset navigation bar.
//
// The bar renders a toggle with a tooltip; the toggle reveals an off-canvas
// panel holding one button per key of the items mapping. Pressing a button
// calls the OnClick handler with that key. The bar keeps no copy of the
// mapping or the handler: both are passed in on every call through Props.
package navbar

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/substats/internal/domain/subset"
	"github.com/tesso57/substats/internal/presentation/tui/components/button"
	"github.com/tesso57/substats/internal/presentation/tui/components/offcanvas"
	"github.com/tesso57/substats/internal/presentation/tui/components/toggle"
	"github.com/tesso57/substats/internal/presentation/tui/components/tooltip"
	"github.com/tesso57/substats/internal/presentation/tui/i18n"
	"github.com/tesso57/substats/internal/presentation/tui/route"
	"github.com/tesso57/substats/internal/presentation/tui/textutil"
)

var (
	// ErrMissingItems is returned when Props carries no items mapping.
	ErrMissingItems = errors.New("navbar: items mapping is required")
	// ErrUnknownButton is returned when pressing a key the mapping lacks.
	ErrUnknownButton = errors.New("navbar: no button for key")
)

// ClickFunc receives the key of the pressed button.
type ClickFunc func(key string) tea.Cmd

// Props carries the caller-owned inputs of one render or update.
type Props struct {
	Items   *subset.Items
	OnClick ClickFunc
	Width   int
	Height  int
}

// Button describes one rendered panel button.
type Button struct {
	ID     string
	Label  string
	Active bool
}

// KeyMap defines the bindings the bar reacts to.
type KeyMap struct {
	Toggle key.Binding
	Focus  key.Binding
	Up     key.Binding
	Down   key.Binding
	Press  key.Binding
	Close  key.Binding
}

// Theme holds the colors of the bar.
type Theme struct {
	Accent    lipgloss.Color
	Border    lipgloss.Color
	Secondary lipgloss.Color
	Tooltip   lipgloss.Color
}

// View is the rendered bar. Panel is empty while the panel is closed.
type View struct {
	Bar   string
	Panel string
}

// Model holds the widget state of the bar.
type Model struct {
	Panel offcanvas.Model

	router        route.Locator
	labels        i18n.Labels
	keys          KeyMap
	theme         Theme
	panelWidth    int
	toggleFocused bool
}

// New creates a collapsed bar. router supplies the current location so the
// button of the routed subset can be highlighted.
func New(router route.Locator, labels i18n.Labels, keys KeyMap, theme Theme, panelWidth int) Model {
	return Model{
		Panel:         offcanvas.New(),
		router:        router,
		labels:        labels,
		keys:          keys,
		theme:         theme,
		panelWidth:    panelWidth,
		toggleFocused: true,
	}
}

// IsOpen reports whether the panel is shown.
func (m Model) IsOpen() bool { return m.Panel.IsOpen() }

// ToggleFocused reports whether the toggle holds the focus.
func (m Model) ToggleFocused() bool { return m.toggleFocused }

// PanelWidth returns the width the panel takes out of totalWidth.
func (m Model) PanelWidth(totalWidth int) int {
	if !m.IsOpen() || totalWidth <= 0 {
		return 0
	}
	w := m.panelWidth
	if w <= 0 {
		w = 56
	}
	return min(w, max(totalWidth/2, 1))
}

// Buttons lists one button per key, in the mapping's key order.
func (m Model) Buttons(p Props) ([]Button, error) {
	if p.Items == nil {
		return nil, ErrMissingItems
	}
	location := ""
	if m.router != nil {
		location = m.router.Location()
	}
	keys := p.Items.Keys()
	buttons := make([]Button, 0, len(keys))
	for _, k := range keys {
		buttons = append(buttons, Button{
			ID:     k,
			Label:  m.labels.Button(k),
			Active: location == route.Subset(k),
		})
	}
	return buttons, nil
}

// Press invokes OnClick once with id.
func (m Model) Press(p Props, id string) (tea.Cmd, error) {
	if p.Items == nil {
		return nil, ErrMissingItems
	}
	if !p.Items.Has(id) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownButton, id)
	}
	if p.OnClick == nil {
		return nil, nil
	}
	return p.OnClick(id), nil
}

// Update handles a message. handled reports whether the bar consumed it.
func (m Model) Update(msg tea.Msg, p Props) (Model, tea.Cmd, bool, error) {
	if p.Items == nil {
		return m, nil, false, ErrMissingItems
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false, nil
	}

	if key.Matches(keyMsg, m.keys.Toggle) {
		m.Panel = m.Panel.Toggle()
		return m, nil, true, nil
	}

	if !m.Panel.IsOpen() {
		switch {
		case key.Matches(keyMsg, m.keys.Focus):
			m.toggleFocused = !m.toggleFocused
			return m, nil, true, nil
		case m.toggleFocused && key.Matches(keyMsg, m.keys.Press):
			m.Panel = m.Panel.Show()
			return m, nil, true, nil
		}
		return m, nil, false, nil
	}

	count := p.Items.Len()
	visible := m.panelProps(p, nil).BodyHeight()
	m.Panel = m.Panel.SetCursor(m.Panel.Cursor(), count, visible)
	switch {
	case key.Matches(keyMsg, m.keys.Close):
		m.Panel = m.Panel.Hide()
		return m, nil, true, nil
	case key.Matches(keyMsg, m.keys.Up):
		m.Panel = m.Panel.MoveCursor(-1, count, visible)
		return m, nil, true, nil
	case key.Matches(keyMsg, m.keys.Down):
		m.Panel = m.Panel.MoveCursor(1, count, visible)
		return m, nil, true, nil
	case key.Matches(keyMsg, m.keys.Press):
		if count == 0 {
			return m, nil, true, nil
		}
		keys := p.Items.Keys()
		cmd, err := m.Press(p, keys[min(m.Panel.Cursor(), count-1)])
		return m, cmd, true, err
	}
	return m, nil, false, nil
}

// View renders the bar and, when open, the panel.
func (m Model) View(p Props) (View, error) {
	buttons, err := m.Buttons(p)
	if err != nil {
		return View{}, err
	}

	control := toggle.Render(toggle.Props{
		Focused:  m.toggleFocused,
		Expanded: m.Panel.IsOpen(),
		Accent:   m.theme.Accent,
	})
	// Left keeps the bar a single line; the content starts right below it.
	control = tooltip.Attach(control, tooltip.Props{
		Visible:    m.toggleFocused && !m.Panel.IsOpen(),
		Text:       m.labels.Tooltip(),
		Placement:  tooltip.Left,
		Background: m.theme.Tooltip,
	})
	bar := lipgloss.PlaceHorizontal(max(p.Width, lipgloss.Width(control)), lipgloss.Right, control)

	if !m.Panel.IsOpen() {
		return View{Bar: bar}, nil
	}

	props := m.panelProps(p, nil)
	// The mapping may have shrunk since the cursor last moved.
	panel := m.Panel.SetCursor(m.Panel.Cursor(), len(buttons), props.BodyHeight())

	labelWidth := max(props.Width-5, 1)
	rows := make([]string, 0, len(buttons))
	for i, b := range buttons {
		rows = append(rows, button.Render(button.Props{
			ID:      b.ID,
			Label:   textutil.Truncate(b.Label, labelWidth-2),
			Variant: button.Secondary,
			Focused: i == panel.Cursor(),
			Active:  b.Active,
			Width:   labelWidth,
			Accent:  m.theme.Accent,
			Muted:   m.theme.Secondary,
		}))
	}

	props.Rows = rows
	return View{Bar: bar, Panel: offcanvas.Render(panel, props)}, nil
}

func (m Model) panelProps(p Props, rows []string) offcanvas.Props {
	return offcanvas.Props{
		Title:      m.labels.PanelTitle(),
		Rows:       rows,
		Width:      m.PanelWidth(p.Width),
		Height:     p.Height,
		Border:     m.theme.Border,
		TitleColor: m.theme.Accent,
	}
}
