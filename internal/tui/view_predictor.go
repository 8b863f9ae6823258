package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/salaryintel/internal/survey"
	"github.com/jask/salaryintel/internal/tui/widgets"
)

func (a *App) renderPredictor(width, height int) string {
	blocks := []string{
		"",
		sectionTitleStyle.Render("Interactive Salary Engine"),
		subtitleStyle.Render("Projecting 2025 market value based on verified field trajectories"),
		"",
		overlineStyle.Render("1. SELECT CAREER TRACK"),
		a.trackButtons(width),
		"",
		overlineStyle.Render("2. YEARS OF EXPERIENCE"),
		a.yearsField(),
		"",
		a.resultBox(),
	}
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, lipgloss.PlaceHorizontal(width, lipgloss.Center, b))
	}
	return fitHeight(strings.Join(out, "\n"), height)
}

func (a *App) trackButtons(width int) string {
	tracks := survey.Tracks()
	buttons := make([]string, 0, len(tracks)*2)
	for i, t := range tracks {
		label := "[" + a.trackKey(t) + "] " + t.ButtonLabel()
		style := trackButtonStyle
		if t == a.track {
			style = trackButtonActiveStyle
		}
		if i > 0 {
			buttons = append(buttons, " ")
		}
		buttons = append(buttons, style.Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	if lipgloss.Width(row) > width {
		// stack the buttons on narrow terminals
		stacked := make([]string, 0, len(tracks))
		for _, b := range buttons {
			if b != " " {
				stacked = append(stacked, b)
			}
		}
		return lipgloss.JoinVertical(lipgloss.Center, stacked...)
	}
	return row
}

func (a *App) trackKey(t survey.Track) string {
	var action Action
	switch t {
	case survey.TrackWeb:
		action = actionTrackWeb
	case survey.TrackData:
		action = actionTrackData
	case survey.TrackCloud:
		action = actionTrackCloud
	}
	for _, b := range a.keys.BindingsForScope(scopePredictor) {
		if b.Action == action && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return "?"
}

func (a *App) yearsField() string {
	pane := widgets.Pane{
		Title:    "years",
		Content:  a.years.View(),
		Selected: a.yearsState == yearsOK,
		Error:    a.yearsState != yearsOK,
	}
	field := pane.Render(24, 3)
	switch a.yearsState {
	case yearsNegative:
		field += "\n" + errTextStyle.Render("Experience cannot be negative")
	case yearsInvalid:
		field += "\n" + errTextStyle.Render("Enter a number of years")
	default:
		field += "\n" + kpiCaptionStyle.Render("Growth "+a.growthLabel())
	}
	return field
}

func (a *App) growthLabel() string {
	cfg, err := survey.ConfigFor(a.track)
	if err != nil {
		return ""
	}
	return a.format.Money(cfg.Growth) + " / year from " + a.format.Money(cfg.Base)
}

func (a *App) resultBox() string {
	body := strings.Join([]string{
		"Projected Annual Salary",
		"",
		a.SalaryFigure(),
		"",
		a.track.Label(),
	}, "\n")
	return resultBoxStyle.Render(body)
}
