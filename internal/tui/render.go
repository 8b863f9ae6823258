package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/salaryintel/internal/tui/widgets"
)

const (
	sidebarWidth = 24
	minBodyWidth = 40
)

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	width := max(1, a.width)
	header := a.renderHeader(width)
	status := a.renderStatusBar(width)
	footer := a.renderFooter(width)
	bodyHeight := max(0, a.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))

	body := ""
	if bodyHeight > 0 {
		body = a.renderBody(width, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	parts := []string{header}
	if bodyHeight > 0 {
		parts = append(parts, body)
	}
	parts = append(parts, status, footer)
	view := fitHeight(strings.Join(parts, "\n"), max(1, a.height))
	return appStyle.Width(width).MaxWidth(width).Render(view)
}

func (a *App) renderBody(width, height int) string {
	if width-sidebarWidth-1 < minBodyWidth {
		return widgets.Text(a.renderContent(width, height)).Render(width, height)
	}
	sidebar := a.renderSidebar(sidebarWidth, height)
	contentWidth := width - sidebarWidth - 1
	content := widgets.Text(a.renderContent(contentWidth, height)).Render(contentWidth, height)
	content = fitHeight(content, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", content)
}

// renderContent dispatches on the active view. Exactly one branch renders;
// an unknown view renders nothing.
func (a *App) renderContent(width, height int) string {
	switch a.router.Active() {
	case ViewOverview:
		return a.renderOverview(width, height)
	case ViewEducation:
		return a.renderEducation(width, height)
	case ViewPredictor:
		return a.renderPredictor(width, height)
	}
	return ""
}

func (a *App) renderHeader(width int) string {
	left := headerTitleStyle.Render(" Salary ") + headerAccentStyle.Render("Intelligence")

	tabs := make([]string, 0, len(Views()))
	for _, v := range Views() {
		label := v.Label()
		if v == a.router.Active() {
			tabs = append(tabs, headerAccentStyle.Render(label))
		} else {
			tabs = append(tabs, headerBarStyle.Foreground(colorMuted).Render(label))
		}
	}
	sep := headerBarStyle.Foreground(colorSurface2).Render(" │ ")
	right := strings.Join(tabs, sep) + headerBarStyle.Render("  ") + chipStyle.Render("◆ STACK OVERFLOW")

	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	if leftW+rightW+1 > width {
		right = chipStyle.Render("◆ STACK OVERFLOW")
		rightW = ansi.StringWidth(right)
	}
	gap := 1
	if leftW+rightW+1 < width {
		gap = width - leftW - rightW
	}
	return renderBar(headerBarStyle, width, left+headerBarStyle.Render(strings.Repeat(" ", gap))+right)
}

func (a *App) renderSidebar(width, height int) string {
	sep := lipgloss.NewStyle().Foreground(colorSurface2).Render("│")
	inner := width - 1
	lines := []string{
		"",
		" " + sidebarTitleStyle.Render("STRATEGY 2025"),
		"",
	}
	for _, v := range Views() {
		hint := a.viewKey(v)
		label := v.Label()
		if v == a.router.Active() {
			lines = append(lines, " "+sidebarActiveStyle.Width(inner-2).Render("▸ "+label))
		} else {
			lines = append(lines, " "+sidebarItemStyle.Render("  "+label)+kpiCaptionStyle.Render(" "+hint))
		}
	}
	out := make([]string, 0, height)
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out = append(out, widgets.PadRight(line, inner)+sep)
	}
	return strings.Join(out, "\n")
}

func (a *App) viewKey(v View) string {
	var action Action
	switch v {
	case ViewOverview:
		action = actionGoOverview
	case ViewEducation:
		action = actionGoEducation
	case ViewPredictor:
		action = actionGoPredictor
	}
	for _, b := range a.keys.BindingsForScope(scopeGlobal) {
		if b.Action == action && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return ""
}

func (a *App) renderStatusBar(width int) string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	msg = " " + msg
	if a.statusErr {
		return renderBar(statusErrBarStyle, width, msg)
	}
	return renderBar(statusBarStyle, width, msg)
}

func (a *App) renderFooter(width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")

	bindings := a.keys.HelpBindings(a.router.Active().scope())
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = descStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, width, space+line)
}

// stackRow is one block of a content column and the rows it occupies.
type stackRow struct {
	widget widgets.Widget
	height int
}

// renderRows stacks blocks with one blank line between them, each at its
// exact height.
func renderRows(width int, rows []stackRow) string {
	if len(rows) == 0 {
		return ""
	}
	stack := widgets.VStack{Spacing: 1}
	total := len(rows) - 1
	for _, r := range rows {
		stack.Widgets = append(stack.Widgets, r.widget)
		stack.Ratios = append(stack.Ratios, float64(r.height))
		total += r.height
	}
	return stack.Render(width, total)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
