package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/substats/internal/application/settings"
	"github.com/tesso57/substats/internal/presentation/tui/state"
)

func TestFromKeyMsg(t *testing.T) {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Quit:       "q",
		OpenSource: "o",
		Back:       "esc",
	})

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Type
	}{
		{name: "quit", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, want: Quit},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, want: Quit},
		{name: "help", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, want: ToggleHelp},
		{name: "open source", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}}, want: OpenSource},
		{name: "back", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: Back},
		{name: "other", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, want: None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromKeyMsg(tt.msg, keys); got.Type != tt.want {
				t.Errorf("FromKeyMsg() = %v, want %v", got.Type, tt.want)
			}
		})
	}
}
