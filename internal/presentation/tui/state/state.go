// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/substats/internal/application/settings"
	"github.com/tesso57/substats/internal/presentation/tui/components/navbar"
)

// Session represents the current view state.
type Session int

const (
	MainView Session = iota
	OpenSourceView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	UpPage     key.Binding
	DownPage   key.Binding
	Open       key.Binding
	Back       key.Binding
	Quit       key.Binding
	Statistics key.Binding
	Focus      key.Binding
	OpenSource key.Binding
	Help       key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Statistics, k.Open, k.Back, k.Help, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.UpPage, k.DownPage},
		{k.Statistics, k.Focus, k.Open, k.Back},
		{k.OpenSource, k.Help, k.Quit},
	}
}

// NavBar returns the bindings the navigation bar reacts to.
func (k *KeyMap) NavBar() navbar.KeyMap {
	return navbar.KeyMap{
		Toggle: k.Statistics,
		Focus:  k.Focus,
		Up:     k.Up,
		Down:   k.Down,
		Press:  k.Open,
		Close:  k.Back,
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		),
		UpPage: key.NewBinding(
			key.WithKeys(splitKeys(cfg.UpPage)...),
			key.WithHelp(cfg.UpPage, "pgup"),
		),
		DownPage: key.NewBinding(
			key.WithKeys(splitKeys(cfg.DownPage)...),
			key.WithHelp(cfg.DownPage, "pgdn"),
		),
		Open: key.NewBinding(
			key.WithKeys(append(splitKeys(cfg.Open), " ")...),
			key.WithHelp(cfg.Open, "press"),
		),
		Back: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Back)...),
			key.WithHelp(cfg.Back, "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Statistics: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Statistics)...),
			key.WithHelp(cfg.Statistics, "statistics"),
		),
		Focus: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Focus)...),
			key.WithHelp(cfg.Focus, "focus"),
		),
		OpenSource: key.NewBinding(
			key.WithKeys(splitKeys(cfg.OpenSource)...),
			key.WithHelp(cfg.OpenSource, "load source"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		case "space":
			out = append(out, " ")
		}
	}
	return out
}
