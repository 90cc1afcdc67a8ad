package sheet

import "github.com/charmbracelet/lipgloss"

// Colors shared with the home screen
var (
	Primary      = lipgloss.Color("63")
	Muted        = lipgloss.Color("241")
	BgPanel      = lipgloss.Color("235")
	BorderNormal = lipgloss.Color("240")
	Handle       = lipgloss.Color("245")
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true, true, false, true).
		BorderForeground(BorderNormal).
		Padding(0, 2)

	HandleStyle = lipgloss.NewStyle().Foreground(Handle)
	TitleStyle  = lipgloss.NewStyle().Bold(true)
	MutedText   = lipgloss.NewStyle().Foreground(Muted)
)

// Option row styles
var (
	OptionNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	OptionHover = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255"))

	OptionFocused = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	Cursor = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Chevron = lipgloss.NewStyle().Foreground(Primary)
)
