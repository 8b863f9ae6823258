package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/salaryintel/internal/survey"
	"github.com/jask/salaryintel/internal/tui/widgets"
)

const findingHeight = 6

func (a *App) renderEducation(width, height int) string {
	finding := a.educationFinding(width)
	table := ""
	if a.showTables {
		table = educationTable(a.format)
	}

	chartHeight := height - findingHeight - 1
	if table != "" {
		if chartHeight-lipgloss.Height(table)-1 < minChartHeight {
			table = ""
		} else {
			chartHeight -= lipgloss.Height(table) + 1
		}
	}

	rows := make([]stackRow, 0, 3)
	if chartHeight >= 3 {
		content := subtitleStyle.Render("Comparing Bachelor's vs Master's degrees across career stages.")
		if chartHeight > 6 {
			content += "\n\n" + educationChart(a.format).Render(width-4, chartHeight-4)
		}
		rows = append(rows, stackRow{widgets.Pane{Title: "Education Impact Analysis", Content: content}, chartHeight})
	}
	rows = append(rows, stackRow{finding, findingHeight})
	if table != "" {
		rows = append(rows, stackRow{widgets.Text(table), lipgloss.Height(table)})
	}
	return renderRows(width, rows)
}

func (a *App) educationFinding(width int) widgets.Pane {
	inner := max(1, width-4)
	wrap := lipgloss.NewStyle().Width(inner)
	lines := []string{
		wrap.Render("A Master's offers a higher start, but experience bridges the gap in senior roles."),
	}
	rows := survey.Education()
	if len(rows) > 0 {
		gap := rows[0].Masters - rows[0].Bachelors
		if gap > 0 {
			lines = append(lines, kpiCaptionStyle.Render(
				"Master's start "+a.format.Money(gap)+" ahead at "+rows[0].Level.String()+" level."))
		}
	}
	if lvl, ok := survey.EducationCrossover(); ok {
		lines = append(lines, findingTitleStyle.Render("Bachelor's catch up at "+lvl.String()+" level."))
	}
	return widgets.Pane{
		Title:    "Finding: The Experience Bridge",
		Content:  strings.Join(lines, "\n"),
		Selected: true,
	}
}

func educationChart(f *survey.Formatter) widgets.LineChart {
	rows := survey.Education()
	labels := make([]string, 0, len(rows))
	masters := widgets.Series{Name: "Master's Degree", Color: colorMasters}
	bachelors := widgets.Series{Name: "Bachelor's Degree", Color: colorBachelors}
	for _, r := range rows {
		labels = append(labels, r.Level.String())
		masters.Values = append(masters.Values, float64(r.Masters))
		bachelors.Values = append(bachelors.Values, float64(r.Bachelors))
	}
	return widgets.LineChart{
		Labels: labels,
		Series: []widgets.Series{masters, bachelors},
		YLabel: f.Compact,
	}
}

func educationTable(f *survey.Formatter) string {
	return widgets.Table([]string{"Level", "Bachelor's", "Master's"}, EducationRows(f), 0)
}

// EducationRows formats the education table one row per level.
func EducationRows(f *survey.Formatter) [][]string {
	rows := survey.Education()
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Level.String(), f.Number(r.Bachelors), f.Number(r.Masters)})
	}
	return out
}
