// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	BarLines    = 1
	HeaderLines = 2

	MainPaddingLeft = 1
	LabelColumn     = 14
)
