package home

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/wingsfly/internal/models"
)

var (
	primaryColor = lipgloss.Color(models.PrimaryColor)
	mutedColor   = lipgloss.Color("241")
	errorColor   = lipgloss.Color("196")
	successColor = lipgloss.Color("42")
	cardBorder   = lipgloss.Color("238")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtleText = lipgloss.NewStyle().Foreground(mutedColor)

	dateCell = lipgloss.NewStyle().
			Width(dateCellWidth).
			Align(lipgloss.Center)

	dateCellSelected = dateCell.
				Background(primaryColor).
				Foreground(lipgloss.Color("255")).
				Bold(true)

	quoteStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("252"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cardBorder).
			Padding(0, 1)

	taskTime   = lipgloss.NewStyle().Foreground(mutedColor)
	taskMarker = lipgloss.NewStyle().Foreground(primaryColor)

	fabStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(0, 1)

	statusOK  = lipgloss.NewStyle().Foreground(successColor)
	statusErr = lipgloss.NewStyle().Foreground(errorColor)

	searchPrompt = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)
)

// tagStyle colors a tag chip by its tag
func tagStyle(t models.Tag) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(models.TagColor(t))).
		Bold(t == models.TagMust)
}

// scrimColor picks the foreground used for the dimmed screen behind the
// drawer; stronger alpha gives a darker gray
func scrimColor(alpha float64) lipgloss.Color {
	switch {
	case alpha >= 0.67:
		return lipgloss.Color("241")
	case alpha >= 0.34:
		return lipgloss.Color("245")
	default:
		return lipgloss.Color("249")
	}
}
