package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/salaryintel/internal/survey"
	"github.com/jask/salaryintel/internal/tui/widgets"
)

const (
	kpiCardHeight  = 6
	minChartHeight = 10
)

func (a *App) renderOverview(width, height int) string {
	remaining := height - kpiCardHeight - 1

	table := ""
	if a.showTables {
		table = trajectoryTable(a.format)
		if remaining-lipgloss.Height(table)-1 < minChartHeight {
			table = ""
		}
	}
	chartHeight := remaining
	if table != "" {
		chartHeight -= lipgloss.Height(table) + 1
	}

	rows := []stackRow{{a.kpiCards(), kpiCardHeight}}
	if chartHeight >= 3 {
		rows = append(rows, stackRow{widgets.Pane{
			Title:   "Market-Wide Career Trajectories (USD)",
			Content: trajectoryChart(a.format).Render(width-4, chartHeight-2),
		}, chartHeight})
	}
	if table != "" {
		rows = append(rows, stackRow{widgets.Text(table), lipgloss.Height(table)})
	}
	return renderRows(width, rows)
}

func (a *App) kpiCards() widgets.HStack {
	kpis := survey.KPIs(a.format)
	cards := make([]widgets.Widget, 0, len(kpis))
	for i, k := range kpis {
		cards = append(cards, kpiCard{kpi: k, hero: i == 0})
	}
	return widgets.HStack{Widgets: cards, Gap: 1}
}

type kpiCard struct {
	kpi  survey.KPI
	hero bool
}

func (c kpiCard) Render(width, height int) string {
	inner := max(1, width-4)
	value := kpiValueStyle.Render(c.kpi.Value)
	if c.hero {
		value = kpiHeroStyle.Render(c.kpi.Value)
	}
	caption := lipgloss.NewStyle().Width(inner).Render(c.kpi.Caption)
	content := strings.Join([]string{
		value,
		kpiTitleStyle.Render(c.kpi.Title),
		kpiCaptionStyle.Render(caption),
	}, "\n")
	return widgets.Pane{Content: content, Selected: c.hero}.Render(width, height)
}

func trajectoryChart(f *survey.Formatter) widgets.LineChart {
	rows := survey.Trajectory()
	labels := make([]string, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Level.String())
	}
	series := []widgets.Series{
		{Name: survey.TrackCloud.Label(), Color: colorCloud},
		{Name: survey.TrackData.Label(), Color: colorData},
		{Name: survey.TrackWeb.Label(), Color: colorWeb},
	}
	tracks := []survey.Track{survey.TrackCloud, survey.TrackData, survey.TrackWeb}
	for i, t := range tracks {
		for _, r := range rows {
			series[i].Values = append(series[i].Values, float64(r.Salary(t)))
		}
	}
	return widgets.LineChart{Labels: labels, Series: series, YLabel: f.Compact}
}

func trajectoryTable(f *survey.Formatter) string {
	headers := []string{"Level", survey.TrackCloud.Label(), survey.TrackData.Label(), survey.TrackWeb.Label()}
	return widgets.Table(headers, TrajectoryRows(f), 0)
}

// TrajectoryRows formats the trajectory table one row per level.
func TrajectoryRows(f *survey.Formatter) [][]string {
	rows := survey.Trajectory()
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Level.String(),
			f.Number(r.Cloud),
			f.Number(r.Data),
			f.Number(r.Web),
		})
	}
	return out
}
