// Package i18n provides the translated labels of the TUI.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. English text doubles as the key.
const (
	Tooltip       = "Statistics"
	PanelTitle    = "Choose the subset to view its statistics"
	SubsetButton  = "Subset %s"
	Loading       = "Loading subsets..."
	ChooseHint    = "Press %s to choose a subset."
	NoSubsets     = "No subsets loaded."
	Rows          = "Rows: %d"
	NumericLine   = "numeric · count %d · missing %d"
	NumericStats  = "mean %.3f  std %.3f  min %.3f  max %.3f"
	NominalLine   = "nominal · count %d · missing %d · distinct %d"
	SourcePrompt  = "Load subset source:"
	CancelHint    = "(esc to cancel)"
	QuitPrompt    = "Are you sure you want to quit?"
	ErrorPrefix   = "Error: %v"
	SourceLoaded  = "Loaded %d subsets"
	NoSourceValue = "(no source)"
)

var spanish = map[string]string{
	Tooltip:       "Estadísticas",
	PanelTitle:    "Elija el subconjunto para consultar sus estadísticas",
	SubsetButton:  "Subconjunto %s",
	Loading:       "Cargando subconjuntos...",
	ChooseHint:    "Pulse %s para elegir un subconjunto.",
	NoSubsets:     "No hay subconjuntos cargados.",
	Rows:          "Filas: %d",
	NumericLine:   "numérico · total %d · faltantes %d",
	NumericStats:  "media %.3f  desv %.3f  mín %.3f  máx %.3f",
	NominalLine:   "nominal · total %d · faltantes %d · distintos %d",
	SourcePrompt:  "Cargar fuente de subconjuntos:",
	CancelHint:    "(esc para cancelar)",
	QuitPrompt:    "¿Seguro que desea salir?",
	ErrorPrefix:   "Error: %v",
	SourceLoaded:  "%d subconjuntos cargados",
	NoSourceValue: "(sin fuente)",
}

var (
	supported = []language.Tag{language.English, language.Spanish}
	matcher   = language.NewMatcher(supported)
	messages  = newCatalog()
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder()
	for key, msg := range spanish {
		if err := b.SetString(language.Spanish, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: spanish message %q: %v", key, err))
		}
	}
	return b
}

// Labels formats UI text in one language.
type Labels struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns labels for lang, falling back to English.
func New(lang string) Labels {
	tag := Match(lang)
	return Labels{tag: tag, printer: message.NewPrinter(tag, message.Catalog(messages))}
}

// Match resolves lang to a supported language.
func Match(lang string) language.Tag {
	parsed, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Language returns the resolved language.
func (l Labels) Language() language.Tag {
	if l.printer == nil {
		return language.English
	}
	return l.tag
}

// Sprintf formats the message stored under key.
func (l Labels) Sprintf(key string, args ...any) string {
	if l.printer == nil {
		l = New("en")
	}
	return l.printer.Sprintf(key, args...)
}

// Tooltip returns the text of the panel toggle's tooltip.
func (l Labels) Tooltip() string { return l.Sprintf(Tooltip) }

// PanelTitle returns the heading of the selection panel.
func (l Labels) PanelTitle() string { return l.Sprintf(PanelTitle) }

// Button returns the label of the button for key.
func (l Labels) Button(key string) string { return l.Sprintf(SubsetButton, key) }
