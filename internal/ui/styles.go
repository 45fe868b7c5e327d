package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorBlue    = lipgloss.Color("39")
	colorPurple  = lipgloss.Color("135")
	colorYellow  = lipgloss.Color("220")
	colorGreen   = lipgloss.Color("42")
	colorPink    = lipgloss.Color("205")
	colorText    = lipgloss.Color("255")
	colorMuted   = lipgloss.Color("245")
	colorSurface = lipgloss.Color("236")
	colorBorder  = lipgloss.Color("240")
)

const cardWidth = 36

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			MarginBottom(1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorPurple).
			Padding(0, 1)

	controlLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	controlValueStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface).
				Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginRight(1)

	selectedCardStyle = cardStyle.
				BorderForeground(colorBlue)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	ratingStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	tagStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	likeStyle = lipgloss.NewStyle().
			Foreground(colorPink)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	overlayStyle = lipgloss.NewStyle().
			Width(60).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorPurple).
			Padding(1, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorPink).
			Padding(0, 1)
)
