package widgets

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

var (
	chartAxis  = lipgloss.Color("#585b70")
	chartMuted = lipgloss.Color("#7f849c")
)

// Series is one plotted line.
type Series struct {
	Name   string
	Color  lipgloss.Color
	Values []float64
}

// LineChart plots series over an ordinal x axis with one slot per label.
// YLabel formats axis ticks; nil prints whole numbers.
type LineChart struct {
	Labels []string
	Series []Series
	YLabel func(v float64) string
}

// Slots are laid out on consecutive days so the time-series chart can place
// them; the x label formatter maps each day back to its slot label.
var chartEpoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func slotTime(i int) time.Time {
	return chartEpoch.AddDate(0, 0, i)
}

func slotIndex(v float64) float64 {
	return (v - float64(chartEpoch.Unix())) / (24 * 60 * 60)
}

func (c LineChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Labels) < 2 || len(c.Series) == 0 {
		return lipgloss.NewStyle().Foreground(chartMuted).Render("No data for chart.")
	}
	legend := c.Legend(width)
	chartHeight := height - 2
	if chartHeight < 4 {
		return legend
	}

	maxVal := 0.0
	for _, s := range c.Series {
		for _, v := range s.Values {
			maxVal = math.Max(maxVal, v)
		}
	}

	chart := tslc.New(width, chartHeight)
	chart.AxisStyle = lipgloss.NewStyle().Foreground(chartAxis)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(chartMuted)
	chart.SetXStep(1)
	chart.SetYStep(2)

	yStep, yMax := niceScale(maxVal, chartHeight)
	chart.Model.YLabelFormatter = yLabelFormatter(yStep, yMax, c.yLabel())

	start, end := slotTime(0), slotTime(len(c.Labels)-1)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, yMax)
	chart.SetViewYRange(0, yMax)

	graphCols := chart.Width() - chart.Origin().X - 1
	chart.Model.XLabelFormatter = slotLabelFormatter(c.Labels, graphCols)

	for _, s := range c.Series {
		chart.SetDataSetStyle(s.Name, lipgloss.NewStyle().Foreground(s.Color))
		for i, v := range s.Values {
			if i >= len(c.Labels) {
				break
			}
			chart.PushDataSet(s.Name, tslc.TimePoint{Time: slotTime(i), Value: v})
		}
	}
	chart.DrawBrailleAll()

	return legend + "\n\n" + chart.View()
}

// Legend renders "● name" entries centred on one line.
func (c LineChart) Legend(width int) string {
	parts := make([]string, 0, len(c.Series))
	for _, s := range c.Series {
		dot := lipgloss.NewStyle().Foreground(s.Color).Render("●")
		parts = append(parts, dot+" "+s.Name)
	}
	return Center(strings.Join(parts, "   "), width)
}

func (c LineChart) yLabel() func(float64) string {
	if c.YLabel != nil {
		return c.YLabel
	}
	return func(v float64) string { return fmt.Sprintf("%d", int64(math.Round(v))) }
}

// slotLabelFormatter prints a slot label only on the column closest to it.
func slotLabelFormatter(labels []string, graphCols int) linechart.LabelFormatter {
	if graphCols < 1 {
		graphCols = 1
	}
	tolerance := float64(len(labels)-1) / float64(graphCols) / 2
	return func(_ int, v float64) string {
		f := slotIndex(v)
		i := int(math.Round(f))
		if i < 0 || i >= len(labels) {
			return ""
		}
		if math.Abs(f-float64(i)) > tolerance {
			return ""
		}
		return labels[i]
	}
}

// niceScale picks a round tick step and the axis maximum for maxVal.
func niceScale(maxVal float64, graphHeight int) (float64, float64) {
	if maxVal <= 0 {
		maxVal = 1
	}
	targetTicks := max(3, min(6, graphHeight/3))
	step := niceCeil(maxVal / float64(targetTicks-1))
	if step < 1 {
		step = 1
	}
	yMax := math.Ceil(maxVal/step) * step
	if yMax < step {
		yMax = step
	}
	return step, yMax
}

func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(v)))
	f := v / pow
	switch {
	case f <= 1:
		return 1 * pow
	case f <= 2:
		return 2 * pow
	case f <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

// yLabelFormatter only labels rows that land on a tick of the nice scale.
func yLabelFormatter(step, yMax float64, format func(float64) string) linechart.LabelFormatter {
	tolerance := step * 0.2
	return func(_ int, v float64) string {
		if v < 0 {
			return ""
		}
		nearest := math.Round(v/step) * step
		if nearest > yMax+step*0.01 {
			return ""
		}
		if math.Abs(v-nearest) > tolerance {
			return ""
		}
		return format(nearest)
	}
}
