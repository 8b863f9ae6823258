package survey

// KPI is a headline figure shown on the overview cards.
type KPI struct {
	Value   string
	Title   string
	Caption string
}

// CleanedProfiles is the number of survey responses kept after quantile
// filtering. It is a reported figure; no pipeline computes it here.
const CleanedProfiles = 22121

// AIDividendPercent is the reported pay increase for developers using AI agents.
const AIDividendPercent = 16.3

// KPIs returns the three overview cards, formatted with f.
func KPIs(f *Formatter) []KPI {
	junior := trajectory[LevelJunior].Cloud
	return []KPI{
		{
			Value:   f.printer.Sprintf("%.1f%%", AIDividendPercent),
			Title:   "The AI Dividend",
			Caption: "Pay increase for using AI Agents.",
		},
		{
			Value:   f.Compact(float64(junior)),
			Title:   "Cloud Junior Median",
			Caption: "Requires prior IT background.",
		},
		{
			Value:   f.Number(CleanedProfiles),
			Title:   "Cleaned Profiles",
			Caption: "Quantile Filtered (0.05-0.95).",
		},
	}
}
