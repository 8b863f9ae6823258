package survey

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidYears is returned for non-finite years, or for years so large the
// projection no longer fits an int.
var ErrInvalidYears = errors.New("invalid years of experience")

// PredictorConfig is the linear model of one track: base + years*growth.
type PredictorConfig struct {
	Base   int
	Growth int
}

// Base medians match the Junior row of the trajectory table; growth is the
// estimated yearly raise along each path.
var predictorConfigs = map[Track]PredictorConfig{
	TrackWeb:   {Base: 9387, Growth: 4700},
	TrackData:  {Base: 31697, Growth: 3400},
	TrackCloud: {Base: 37581, Growth: 3500},
}

// ConfigFor returns the predictor parameters of a track.
func ConfigFor(t Track) (PredictorConfig, error) {
	cfg, ok := predictorConfigs[t]
	if !ok {
		return PredictorConfig{}, fmt.Errorf("%w %q", ErrUnknownTrack, string(t))
	}
	return cfg, nil
}

// PredictSalary projects the annual salary for a track after the given years
// of experience. Negative years are clamped to zero; fractional years scale
// linearly and the result is rounded to the nearest dollar. Non-finite years
// and projections beyond the int range fail with ErrInvalidYears.
func PredictSalary(t Track, years float64) (int, error) {
	cfg, err := ConfigFor(t)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(years) || math.IsInf(years, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidYears, years)
	}
	effective := math.Max(0, years)
	v := math.Round(float64(cfg.Base) + effective*float64(cfg.Growth))
	// float64(math.MaxInt64) rounds up to 2^63, which int cannot hold
	if v >= float64(math.MaxInt64) {
		return 0, fmt.Errorf("%w: %v years overflows the projection", ErrInvalidYears, years)
	}
	return int(v), nil
}

// DisplaySalary renders the projected salary the way the dashboard shows it.
// Whenever the raw input is negative the whole figure is the literal "0",
// not the clamped base salary.
func DisplaySalary(f *Formatter, t Track, years float64) (string, error) {
	if years < 0 {
		return "0", nil
	}
	v, err := PredictSalary(t, years)
	if err != nil {
		return "", err
	}
	return f.Number(v), nil
}
