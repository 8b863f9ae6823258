package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c2e7")).Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Padding(0, 1)
	tableFirstStyle  = tableCellStyle.Foreground(lipgloss.Color("#a6adc8"))
)

// Table renders rows under headers. Every column after the first is right
// aligned since the dashboard only tabulates figures. width <= 0 lets the
// table size itself.
func Table(headers []string, rows [][]string, width int) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				s = tableHeaderStyle
			case col == 0:
				s = tableFirstStyle
			default:
				s = tableCellStyle
			}
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}
