package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/treeflip/treeflip/internal/config"
	"github.com/treeflip/treeflip/internal/tui/colors"
)

// === Layout Styles ===
var (
	// Standard pane border
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Gray).
			Padding(0, 1)

	// Focus style for the active pane
	ActivePaneStyle = PaneStyle.
			BorderForeground(colors.NeonPink)

	LogoStyle = lipgloss.NewStyle().
			Foreground(colors.NeonPurple).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(colors.LightGray)

	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(colors.NeonCyan).
			Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colors.LightGray).
				Italic(true)

	ResultStyle = lipgloss.NewStyle().
			Foreground(colors.NeonPurple).
			Bold(true)

	// History rows
	TimestampStyle = lipgloss.NewStyle().
			Foreground(colors.LightGray)

	OriginalStyle = lipgloss.NewStyle().
			Foreground(colors.LightGray).
			Strikethrough(true)

	ProcessedStyle = lipgloss.NewStyle().
			Foreground(colors.White)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(colors.NeonPink).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colors.Gray)
)

// stateStyle returns the badge style for a workflow state name.
func stateStyle(name string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch name {
	case "processing":
		return base.Foreground(colors.StateProcessing)
	case "success":
		return base.Foreground(colors.StateSuccess)
	case "error":
		return base.Foreground(colors.StateError)
	default:
		return base.Foreground(colors.StateIdle)
	}
}

// ApplyTheme selects light or dark adaptive colors from the theme setting.
func ApplyTheme(theme int) {
	switch theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	default:
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	}
}
