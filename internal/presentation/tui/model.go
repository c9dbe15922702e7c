// Package tui provides the main user interface model and view components.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/substats/internal/application/settings"
	"github.com/tesso57/substats/internal/application/usecase"
	"github.com/tesso57/substats/internal/domain/subset"
	"github.com/tesso57/substats/internal/infrastructure/logging"
	"github.com/tesso57/substats/internal/presentation/tui/components/navbar"
	"github.com/tesso57/substats/internal/presentation/tui/i18n"
	"github.com/tesso57/substats/internal/presentation/tui/route"
	"github.com/tesso57/substats/internal/presentation/tui/state"
	"github.com/tesso57/substats/internal/presentation/tui/update"
	"github.com/tesso57/substats/internal/presentation/tui/view"
)

var log = logging.New("tui")

// Model represents the main application state.
type Model struct {
	settings   settings.Settings
	statistics usecase.StatisticsService
	state      *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, statistics usecase.StatisticsService) *Model {
	m := &Model{
		settings:   cfg,
		statistics: statistics,
		state:      newModelState(cfg),
	}
	update.RefreshStatistics(m.state, m.deps())
	log.WithField("requested", cfg.Language).
		WithField("language", m.state.Labels.Language().String()).
		Debug("ui language resolved")
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	source := strings.TrimSpace(m.settings.Source)
	if source == "" {
		return textinput.Blink
	}
	return update.StartLoad(m.state, m.deps(), source)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg, m.deps())
	case update.SourceLoadedMsg:
		update.HandleSourceLoadedMsg(m.state, msg, m.deps())
	case update.SubsetSelectedMsg:
		update.HandleSubsetSelectedMsg(m.state, msg, m.deps())
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state.Session == state.MainView {
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{Statistics: m.statistics}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	keys := state.NewKeyMap(cfg.KeyMap)
	router := route.NewRouter()
	labels := i18n.New(cfg.Language)

	st := &state.ModelState{
		Session:   state.MainView,
		Previous:  state.MainView,
		NavBar:    navbar.New(router, labels, keys.NavBar(), newTheme(cfg.Theme), cfg.PanelWidth),
		Router:    router,
		Labels:    labels,
		Items:     subset.NewItems(),
		TextInput: newTextInput(),
		Viewport:  newViewport(keys),
		Help:      help.New(),
		Spinner:   newSpinner(cfg.Theme),
		Keys:      keys,
	}

	if strings.TrimSpace(cfg.Source) == "" {
		st.Session = state.OpenSourceView
		st.TextInput.Focus()
	} else {
		st.Loading = true
		st.Source = strings.TrimSpace(cfg.Source)
	}
	return st
}

func newTheme(cfg settings.ThemeConfig) navbar.Theme {
	return navbar.Theme{
		Accent:    lipgloss.Color(cfg.Accent),
		Border:    lipgloss.Color(cfg.Border),
		Secondary: lipgloss.Color(cfg.Secondary),
		Tooltip:   lipgloss.Color(cfg.Tooltip),
	}
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "./subsets.json (json, yaml, csv, xlsx, sqlite)"
	ti.CharLimit = 256
	ti.Width = 40
	return ti
}

func newSpinner(theme settings.ThemeConfig) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	return s
}

// newViewport scrolls with the configured keys only so that the bar's
// press key never doubles as a page down.
func newViewport(keys state.KeyMap) viewport.Model {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		Up:       keys.Up,
		Down:     keys.Down,
		PageUp:   keys.UpPage,
		PageDown: keys.DownPage,
	}
	vp.Style = lipgloss.NewStyle().PaddingRight(1)
	return vp
}
