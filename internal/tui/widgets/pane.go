package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	paneBorder   = lipgloss.Color("#6c7086")
	paneSelected = lipgloss.Color("#f5c2e7")
	paneError    = lipgloss.Color("#f38ba8")
	paneText     = lipgloss.Color("#cdd6f4")
)

// Pane draws rounded chrome with the title set into the top border. It fills
// the height it is given, three rows at least.
type Pane struct {
	Title    string
	Content  string
	Selected bool
	Error    bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	h := max(3, height)
	if width < 4 {
		width = 4
	}

	border := paneBorder
	if p.Selected {
		border = paneSelected
	}
	if p.Error {
		border = paneError
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(paneText).Bold(true)
	if p.Error {
		titleStyle = titleStyle.Foreground(paneError)
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	titleText := ""
	if t := strings.TrimSpace(p.Title); t != "" {
		titleText = " " + t + " "
		if ansi.StringWidth(titleText) > innerWidth {
			titleText = " " + ansi.Truncate(t, max(1, innerWidth-2), "") + " "
		}
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	innerHeight := h - 2
	contentLines := strings.Split(p.Content, "\n")
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+PadRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
