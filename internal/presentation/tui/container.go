package tui

import (
	"fmt"

	"github.com/tesso57/substats/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/substats/internal/presentation/tui/components/main"
	"github.com/tesso57/substats/internal/presentation/tui/components/modal"
	"github.com/tesso57/substats/internal/presentation/tui/components/navbar"
	"github.com/tesso57/substats/internal/presentation/tui/i18n"
	"github.com/tesso57/substats/internal/presentation/tui/metrics"
	"github.com/tesso57/substats/internal/presentation/tui/state"
	"github.com/tesso57/substats/internal/presentation/tui/textutil"
	"github.com/tesso57/substats/internal/presentation/tui/update"
	"github.com/tesso57/substats/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		NavBar: m.buildNavBarView(),
		Header: m.buildHeaderProps(),
		Main:   m.buildMainProps(),
		Modal:  m.buildModalProps(),
		Footer: m.buildFooterProps(),
	}
}

func (m *Model) buildNavBarView() navbar.View {
	v, err := m.state.NavBar.View(update.NavBarProps(m.state))
	if err != nil {
		return navbar.View{Bar: m.state.Labels.Sprintf(i18n.ErrorPrefix, err)}
	}
	return v
}

func (m *Model) buildHeaderProps() header.Props {
	if m.state.Loading {
		return header.Props{}
	}
	// The header sits inside the main padding and carries a two-cell icon.
	width := update.MainWidth(m.state) - metrics.MainPaddingLeft - 4

	source := m.state.Source
	if source == "" {
		source = m.state.Labels.Sprintf(i18n.NoSourceValue)
	}
	var subsetLabel string
	if key, ok := update.CurrentSubset(m.state); ok {
		subsetLabel = m.state.Labels.Button(key)
	}
	return header.Props{
		Visible: true,
		Source:  headerLine(source, width),
		Subset:  headerLine(subsetLabel, width),
	}
}

func (m *Model) buildMainProps() mainview.Props {
	var body string
	if m.state.Loading {
		body = fmt.Sprintf("\n\n   %s %s", m.state.Spinner.View(), m.state.Labels.Sprintf(i18n.Loading))
	} else {
		body = m.state.Viewport.View()
	}
	if m.state.Err != nil && !m.state.Loading {
		body = m.state.Labels.Sprintf(i18n.ErrorPrefix, m.state.Err) + "\n\n" + body
	}

	return mainview.Props{
		Width:  update.MainWidth(m.state),
		Height: update.ContentHeight(m.state),
		Body:   body,
		Dimmed: m.state.NavBar.IsOpen(),
	}
}

func (m *Model) buildModalProps() modal.Props {
	labels := m.state.Labels
	switch {
	case m.state.Session == state.OpenSourceView:
		return modal.Props{
			Visible: true,
			Kind:    modal.OpenSource,
			Body: fmt.Sprintf(
				"%s\n\n%s\n\n%s",
				labels.Sprintf(i18n.SourcePrompt),
				m.state.TextInput.View(),
				labels.Sprintf(i18n.CancelHint),
			),
			Width:  m.state.Width,
			Height: m.state.Height,
		}
	case m.state.Session == state.QuitView:
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    labels.Sprintf(i18n.QuitPrompt) + "\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	case m.state.Help.ShowAll:
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := state.FooterHelpText(m.state.Help, m.state.Keys)
	return state.FooterText(m.state.Session, m.state.Loading, m.state.StatusMessage, helpText)
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
