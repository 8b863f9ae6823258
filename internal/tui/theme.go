package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette (true-color hex values)
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink  lipgloss.Color = "#f5c2e7"
	colorMauve lipgloss.Color = "#cba6f7"
	colorRed   lipgloss.Color = "#f38ba8"
	colorGreen lipgloss.Color = "#a6e3a1"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent    = colorPink
	colorSecondary = colorMauve
	colorSuccess   = colorGreen
	colorError     = colorRed
	colorMuted     = colorSubtext0
)

// Series colors: cloud carries the brand accent, web stays muted.
const (
	colorCloud     = colorPink
	colorData      = colorMauve
	colorWeb       = colorOverlay1
	colorMasters   = colorMauve
	colorBachelors = colorPink
)
