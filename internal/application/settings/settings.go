// Package settings defines application-level configuration data.
package settings

import "strings"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up         string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down       string `yaml:"down" kong:"help='Down key',default='j,down'"`
	UpPage     string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage   string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Open       string `yaml:"open" kong:"help='Press key',default='enter'"`
	Back       string `yaml:"back" kong:"help='Close panel key',default='esc'"`
	Quit       string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Statistics string `yaml:"statistics" kong:"help='Toggle statistics panel key',default='s'"`
	Focus      string `yaml:"focus" kong:"help='Move focus key',default='tab'"`
	OpenSource string `yaml:"open_source" kong:"help='Load another source key',default='o'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent    string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Border    string `yaml:"border" kong:"help='Border color',default='63'"`
	Secondary string `yaml:"secondary" kong:"help='Secondary button color',default='240'"`
	Tooltip   string `yaml:"tooltip" kong:"help='Tooltip background color',default='236'"`
}

// Settings represents the application configuration.
type Settings struct {
	Source      string       `yaml:"source" kong:"help='Subset data file (json, yaml, csv, xlsx, sqlite)'"`
	GroupColumn string       `yaml:"group_column" kong:"help='Column that names the subset of a row',default='subset'"`
	Table       string       `yaml:"table" kong:"help='SQLite table holding the rows',default='records'"`
	Language    string       `yaml:"language" kong:"help='UI language (en, es)',default='en'"`
	PanelWidth  int          `yaml:"panel_width" kong:"help='Width of the statistics panel',default='56'"`
	LogFile     string       `yaml:"log_file" kong:"help='Log file path'"`
	LogLevel    string       `yaml:"log_level" kong:"help='Log level',default='info'"`
	KeyMap      KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme       ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
}

// SourceOptions returns the settings that drive source loading.
func (s Settings) SourceOptions() SourceOptions {
	return SourceOptions{
		GroupColumn: strings.TrimSpace(s.GroupColumn),
		Table:       strings.TrimSpace(s.Table),
	}
}

// SourceOptions controls how tabular sources are split into subsets.
type SourceOptions struct {
	GroupColumn string
	Table       string
}
