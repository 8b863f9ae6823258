package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerTitleStyle  = lipgloss.NewStyle().Background(colorMantle).Foreground(colorText).Bold(true)
	headerAccentStyle = lipgloss.NewStyle().Background(colorMantle).Foreground(colorAccent).Bold(true)
	chipStyle         = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorAccent).
				Padding(0, 1)

	sidebarTitleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	sidebarItemStyle   = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	sidebarActiveStyle = lipgloss.NewStyle().
				Background(colorAccent).
				Foreground(colorBase).
				Bold(true).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	kpiValueStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	kpiHeroStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	kpiTitleStyle   = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	kpiCaptionStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	sectionTitleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	subtitleStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	findingTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	overlineStyle     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	trackButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSurface2).
				Foreground(colorMuted).
				Width(18).
				Align(lipgloss.Center)
	trackButtonActiveStyle = trackButtonStyle.
				BorderForeground(colorAccent).
				Background(colorAccent).
				Foreground(colorBase).
				Bold(true)

	resultBoxStyle = lipgloss.NewStyle().
			Background(colorSecondary).
			Foreground(colorBase).
			Bold(true).
			Padding(1, 4).
			Align(lipgloss.Center)
	errTextStyle = lipgloss.NewStyle().Foreground(colorError)
)
