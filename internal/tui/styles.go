package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#7D56F4")
	muted  = lipgloss.Color("#707070")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3F3F3F")).
			Background(lipgloss.Color("#FAFAFA")).
			Padding(0, 4)

	captionStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(1)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	timeStyle = lipgloss.NewStyle().Foreground(muted)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D9D9D9"))

	selectedTabStyle = tabStyle.
				Background(lipgloss.Color("#C4BDF5")).
				Foreground(lipgloss.Color("#000000")).
				BorderForeground(accent)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent)

	emptyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3F3F3F")).
			Padding(1, 2)

	barStyle = lipgloss.NewStyle().Foreground(accent)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)
