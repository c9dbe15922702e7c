package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/substats/internal/application/settings"
	"github.com/tesso57/substats/internal/application/usecase"
	"github.com/tesso57/substats/internal/domain/subset"
	"github.com/tesso57/substats/internal/presentation/tui/route"
	"github.com/tesso57/substats/internal/presentation/tui/state"
	"github.com/tesso57/substats/internal/presentation/tui/update"
)

type stubSourceRepo struct {
	mock.Mock
}

func (s *stubSourceRepo) Load(ctx context.Context, path string) (*subset.Items, error) {
	args := s.Called(ctx, path)
	items, _ := args.Get(0).(*subset.Items)
	return items, args.Error(1)
}

func testSettings(source string) settings.Settings {
	return settings.Settings{
		Source:     source,
		Language:   "en",
		PanelWidth: 56,
		KeyMap: settings.KeyMapConfig{
			Up:         "k,up",
			Down:       "j,down",
			UpPage:     "ctrl+u",
			DownPage:   "ctrl+d",
			Open:       "enter",
			Back:       "esc",
			Quit:       "q",
			Statistics: "s",
			Focus:      "tab",
			OpenSource: "o",
		},
		Theme: settings.ThemeConfig{Accent: "205", Border: "63", Secondary: "240", Tooltip: "236"},
	}
}

func testItems() *subset.Items {
	items := subset.NewItems()
	items.Set("A", subset.Records{
		{"age": 30.0, "color": "red"},
		{"age": 40.0, "color": "blue"},
	})
	items.Set("B", subset.Records{
		{"height": 1.8, "color": "green"},
	})
	return items
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedModel returns a sized model whose source has been loaded through
// the initial command.
func loadedModel(t *testing.T, cfg settings.Settings, items *subset.Items) (*Model, *stubSourceRepo) {
	t.Helper()
	repo := &stubSourceRepo{}
	repo.On("Load", mock.Anything, cfg.Source).Return(items, nil).Once()

	m := NewModel(cfg, usecase.NewStatisticsService(repo, nil))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	cmd := m.Init()
	require.NotNil(t, cmd)
	loaded := findSourceLoaded(t, cmd)
	m.Update(loaded)
	return m, repo
}

func findSourceLoaded(t *testing.T, cmd tea.Cmd) update.SourceLoadedMsg {
	t.Helper()
	switch msg := cmd().(type) {
	case update.SourceLoadedMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if loaded, ok := c().(update.SourceLoadedMsg); ok {
				return loaded
			}
		}
	}
	t.Fatal("command did not load a source")
	return update.SourceLoadedMsg{}
}

func TestNewModelWithoutSourceAsksForOne(t *testing.T) {
	m := NewModel(testSettings(""), usecase.NewStatisticsService(&stubSourceRepo{}, nil))

	assert.Equal(t, state.OpenSourceView, m.state.Session)
	require.NotNil(t, m.state.Items)
	assert.Equal(t, 0, m.state.Items.Len())
	assert.False(t, m.state.Loading)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, m.View(), "Load subset source:")
}

func TestNewModelWithSourceStartsLoading(t *testing.T) {
	m := NewModel(testSettings("data.json"), usecase.NewStatisticsService(&stubSourceRepo{}, nil))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, state.MainView, m.state.Session)
	assert.True(t, m.state.Loading)
	assert.Contains(t, m.View(), "Loading subsets...")
}

func TestSourceLoadInstallsItems(t *testing.T) {
	m, repo := loadedModel(t, testSettings("data.json"), testItems())
	repo.AssertExpectations(t)

	assert.False(t, m.state.Loading)
	assert.Equal(t, 2, m.state.Items.Len())
	assert.Equal(t, "data.json", m.state.Source)

	out := m.View()
	assert.Contains(t, out, "Loaded 2 subsets")
	assert.Contains(t, out, "Press s to choose a subset.")
	assert.Contains(t, out, "Statistics")
	assert.NotContains(t, out, "Choose the subset to view its statistics")
}

func TestSourceLoadFailureShowsError(t *testing.T) {
	repo := &stubSourceRepo{}
	repo.On("Load", mock.Anything, "broken.csv").Return(nil, errors.New("boom")).Once()

	m := NewModel(testSettings("broken.csv"), usecase.NewStatisticsService(repo, nil))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(findSourceLoaded(t, m.Init()))

	require.Error(t, m.state.Err)
	require.NotNil(t, m.state.Items)
	assert.Equal(t, 0, m.state.Items.Len())
	out := m.View()
	assert.Contains(t, out, "Error: boom")
	assert.Contains(t, out, "No subsets loaded.")
}

func TestPressingSubsetRoutesToItsStatistics(t *testing.T) {
	m, _ := loadedModel(t, testSettings("data.json"), testItems())

	m.Update(runes("s"))
	require.True(t, m.state.NavBar.IsOpen())
	out := m.View()
	assert.Contains(t, out, "Choose the subset to view its statistics")
	assert.Contains(t, out, "Subset A")
	assert.Contains(t, out, "Subset B")

	m.Update(runes("j"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	selected, ok := cmd().(update.SubsetSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "B", selected.Key)

	m.Update(selected)
	assert.Equal(t, route.Subset("B"), m.state.Router.Location())

	out = m.View()
	assert.Contains(t, out, "height")
	assert.Contains(t, out, "Rows: 1")
}

func TestToggleTwiceRestoresView(t *testing.T) {
	m, _ := loadedModel(t, testSettings("data.json"), testItems())
	before := m.View()

	m.Update(runes("s"))
	assert.NotEqual(t, before, m.View())
	m.Update(runes("s"))

	assert.False(t, m.state.NavBar.IsOpen())
	assert.Equal(t, before, m.View())
}

func TestEscClosesPanelThenGoesBack(t *testing.T) {
	m, _ := loadedModel(t, testSettings("data.json"), testItems())

	m.Update(runes("s"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, route.Subset("A"), m.state.Router.Location())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.state.NavBar.IsOpen())
	assert.Equal(t, route.Subset("A"), m.state.Router.Location())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, route.Home, m.state.Router.Location())
}

func TestQuitConfirmation(t *testing.T) {
	m, _ := loadedModel(t, testSettings("data.json"), testItems())

	m.Update(runes("q"))
	assert.Equal(t, state.QuitView, m.state.Session)
	assert.Contains(t, m.View(), "Are you sure you want to quit?")

	m.Update(runes("n"))
	assert.Equal(t, state.MainView, m.state.Session)

	m.Update(runes("q"))
	_, cmd := m.Update(runes("y"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestOpenSourceLoadsAnotherFile(t *testing.T) {
	m, repo := loadedModel(t, testSettings("data.json"), testItems())

	other := subset.NewItems()
	other.Set("Z", subset.Records{{"x": 1.0}})
	repo.On("Load", mock.Anything, "other.yaml").Return(other, nil).Once()

	m.Update(runes("o"))
	require.Equal(t, state.OpenSourceView, m.state.Session)
	assert.Equal(t, "data.json", m.state.TextInput.Value())

	m.state.TextInput.SetValue("other.yaml")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.state.Loading)

	m.Update(findSourceLoaded(t, cmd))
	repo.AssertExpectations(t)
	assert.Equal(t, []string{"Z"}, m.state.Items.Keys())
	assert.Equal(t, "other.yaml", m.state.Source)
}

func TestHelpModal(t *testing.T) {
	m, _ := loadedModel(t, testSettings("data.json"), testItems())

	m.Update(runes("?"))
	require.True(t, m.state.Help.ShowAll)
	assert.Contains(t, m.View(), "load source")

	m.Update(runes("?"))
	assert.False(t, m.state.Help.ShowAll)
}

func TestSpanishLabels(t *testing.T) {
	cfg := testSettings("data.json")
	cfg.Language = "es"
	m, _ := loadedModel(t, cfg, testItems())

	m.Update(runes("s"))
	out := m.View()
	assert.Contains(t, out, "Elija el subconjunto para consultar sus estadísticas")
	assert.Contains(t, out, "Subconjunto A")
}

func TestTooltipShownWhileToggleFocused(t *testing.T) {
	m, _ := loadedModel(t, testSettings("data.json"), testItems())
	require.True(t, strings.Contains(m.View(), "Statistics"))

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.state.NavBar.ToggleFocused())
	assert.NotContains(t, m.View(), "Statistics")
}
