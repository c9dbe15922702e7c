package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/substats/internal/domain/subset"
	"github.com/tesso57/substats/internal/presentation/tui/components/navbar"
	"github.com/tesso57/substats/internal/presentation/tui/i18n"
	"github.com/tesso57/substats/internal/presentation/tui/route"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session       Session
	Previous      Session
	NavBar        navbar.Model
	Router        *route.Router
	Labels        i18n.Labels
	Items         *subset.Items
	Source        string
	TextInput     textinput.Model
	Viewport      viewport.Model
	Help          help.Model
	Spinner       spinner.Model
	Loading       bool
	LoadSeq       int
	Keys          KeyMap
	Width         int
	Height        int
	Err           error
	StatusMessage string
}
