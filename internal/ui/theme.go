package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Border    lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Info      lipgloss.Style
	Warning   lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	Header    lipgloss.Style
	StatusBar lipgloss.Style

	Positive lipgloss.Style
	Negative lipgloss.Style
	Neutral  lipgloss.Style
}

var DefaultTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Border:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#89B4FA")).Padding(1, 2),
	Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("#89DCEB")),
	Warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAB387")),
	TabActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89B4FA")).Padding(0, 1),
	Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Padding(0, 1),
	Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bac2de")),
	StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Background(lipgloss.Color("#313244")).Padding(0, 1),

	Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
	Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	Neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("#94E2D5")),
}

// MonoTheme relies on weight and reverse video only.
var MonoTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true),
	Label:     lipgloss.NewStyle().Faint(true),
	Value:     lipgloss.NewStyle(),
	Border:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2),
	Hint:      lipgloss.NewStyle().Faint(true),
	Error:     lipgloss.NewStyle().Bold(true),
	Success:   lipgloss.NewStyle().Bold(true),
	Info:      lipgloss.NewStyle(),
	Warning:   lipgloss.NewStyle().Bold(true),
	TabActive: lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
	Tab:       lipgloss.NewStyle().Padding(0, 1),
	Header:    lipgloss.NewStyle().Bold(true),
	StatusBar: lipgloss.NewStyle().Reverse(true).Padding(0, 1),

	Positive: lipgloss.NewStyle(),
	Negative: lipgloss.NewStyle(),
	Neutral:  lipgloss.NewStyle(),
}

// ThemeByName returns the named theme, DefaultTheme for unknown names.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mono", "monochrome":
		return MonoTheme
	default:
		return DefaultTheme
	}
}
