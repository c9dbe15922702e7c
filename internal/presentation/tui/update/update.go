// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/substats/internal/application/usecase"
	"github.com/tesso57/substats/internal/domain/subset"
	"github.com/tesso57/substats/internal/infrastructure/logging"
	"github.com/tesso57/substats/internal/presentation/tui/components/navbar"
	"github.com/tesso57/substats/internal/presentation/tui/i18n"
	"github.com/tesso57/substats/internal/presentation/tui/intent"
	"github.com/tesso57/substats/internal/presentation/tui/presenter"
	"github.com/tesso57/substats/internal/presentation/tui/route"
	"github.com/tesso57/substats/internal/presentation/tui/state"
)

var log = logging.New("tui")

// Deps groups external dependencies for updates.
type Deps struct {
	Statistics usecase.StatisticsService
}

// SourceLoadedMsg is emitted after loading a subset source.
type SourceLoadedMsg struct {
	Path  string
	Items *subset.Items
	Err   error
	// Seq identifies the load request; only the latest one is installed.
	Seq int
}

// SubsetSelectedMsg is emitted when a subset button is pressed.
type SubsetSelectedMsg struct {
	Key string
}

// LoadSourceCmd creates a command to load the subsets stored at path.
func LoadSourceCmd(svc usecase.StatisticsService, path string, seq int) tea.Cmd {
	trimmed := strings.TrimSpace(path)
	return func() tea.Msg {
		items, err := svc.Load(context.Background(), trimmed)
		return SourceLoadedMsg{Path: trimmed, Items: items, Err: err, Seq: seq}
	}
}

// StartLoad marks a new load as the latest one and returns its command.
func StartLoad(s *state.ModelState, deps Deps, path string) tea.Cmd {
	s.LoadSeq++
	s.Loading = true
	s.Err = nil
	return tea.Batch(s.Spinner.Tick, LoadSourceCmd(deps.Statistics, path, s.LoadSeq))
}

// SelectSubset is the navigation bar's click handler.
func SelectSubset(key string) tea.Cmd {
	return func() tea.Msg {
		return SubsetSelectedMsg{Key: key}
	}
}

// NavBarProps builds the inputs the navigation bar renders from.
func NavBarProps(s *state.ModelState) navbar.Props {
	l := buildLayoutMetrics(s)
	return navbar.Props{
		Items:   s.Items,
		OnClick: SelectSubset,
		Width:   s.Width,
		Height:  l.contentHeight,
	}
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch s.Session {
	case state.OpenSourceView:
		return handleOpenSourceView(s, msg, deps)
	case state.QuitView:
		return handleQuitView(s, msg)
	}

	if s.Help.ShowAll {
		if in := intent.FromKeyMsg(msg, s.Keys); in.Type == intent.ToggleHelp || in.Type == intent.Back {
			s.Help.ShowAll = false
			UpdateSizes(s)
			return nil, true
		}
		return nil, true
	}

	bar, cmd, handled, err := s.NavBar.Update(msg, NavBarProps(s))
	s.NavBar = bar
	if err != nil {
		s.Err = err
		log.WithError(err).Warn("navigation bar update failed")
	}
	if handled {
		UpdateSizes(s)
		return cmd, true
	}

	switch intent.FromKeyMsg(msg, s.Keys).Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.OpenSource:
		if s.Loading {
			return nil, true
		}
		s.Previous = s.Session
		s.Session = state.OpenSourceView
		s.TextInput.SetValue(s.Source)
		s.TextInput.CursorEnd()
		return s.TextInput.Focus(), true
	case intent.Back:
		if s.Router.Back() {
			RefreshStatistics(s, deps)
			return nil, true
		}
	}
	return nil, false
}

func handleOpenSourceView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(s.TextInput.Value())
		s.TextInput.Reset()
		s.Session = s.Previous
		if path == "" {
			return nil, true
		}
		return StartLoad(s, deps, path), true
	case "esc":
		s.TextInput.Reset()
		s.Session = s.Previous
		return nil, true
	}

	var cmd tea.Cmd
	s.TextInput, cmd = s.TextInput.Update(msg)
	return cmd, true
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

// HandleWindowSize records the terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg, deps Deps) {
	s.Width = msg.Width
	s.Height = msg.Height
	UpdateSizes(s)
	RefreshStatistics(s, deps)
}

// HandleSourceLoadedMsg installs freshly loaded subsets.
func HandleSourceLoadedMsg(s *state.ModelState, msg SourceLoadedMsg, deps Deps) {
	if msg.Seq != s.LoadSeq {
		log.WithField("path", msg.Path).Debug("dropping stale source load")
		return
	}
	s.Loading = false
	s.Items = msg.Items
	if s.Items == nil {
		s.Items = subset.NewItems()
	}
	s.Source = msg.Path
	s.Router.Reset()
	s.NavBar.Panel = s.NavBar.Panel.Hide()
	s.Err = msg.Err
	if msg.Err != nil {
		s.StatusMessage = ""
		log.WithError(msg.Err).WithField("path", msg.Path).Error("source load failed")
	} else {
		s.StatusMessage = s.Labels.Sprintf(i18n.SourceLoaded, s.Items.Len())
	}
	UpdateSizes(s)
	RefreshStatistics(s, deps)
}

// HandleSubsetSelectedMsg routes to the statistics of the selected subset.
func HandleSubsetSelectedMsg(s *state.ModelState, msg SubsetSelectedMsg, deps Deps) {
	log.WithField("subset", msg.Key).Debug("subset selected")
	s.Router.Push(route.Subset(msg.Key))
	s.Err = nil
	RefreshStatistics(s, deps)
}

// RefreshStatistics rebuilds the viewport content for the current route.
func RefreshStatistics(s *state.ModelState, deps Deps) {
	key, ok := route.SubsetKey(s.Router.Location())
	if !ok {
		s.Viewport.SetContent(presenter.EmptyBody(s.Labels, s.Items, s.Keys.Statistics.Help().Key))
		return
	}
	summary, err := deps.Statistics.Summarize(s.Items, key)
	if err != nil {
		s.Err = err
		s.Viewport.SetContent("")
		return
	}
	s.Viewport.SetContent(presenter.StatisticsBody(summary, s.Labels, s.Viewport.Width))
	s.Viewport.GotoTop()
}

// CurrentSubset returns the key of the routed subset.
func CurrentSubset(s *state.ModelState) (string, bool) {
	if s == nil || s.Router == nil {
		return "", false
	}
	return route.SubsetKey(s.Router.Location())
}
