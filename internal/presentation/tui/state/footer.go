package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// FooterText returns the footer content for the current session.
func FooterText(session Session, loading bool, statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	if loading || status == "" || session != MainView {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}

// FooterHelpText renders the short help line.
func FooterHelpText(h help.Model, keys KeyMap) string {
	return h.ShortHelpView(keys.ShortHelp())
}
