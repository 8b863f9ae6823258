package survey

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictSalaryKnownPoints(t *testing.T) {
	tests := []struct {
		track Track
		years float64
		want  int
	}{
		{TrackData, 0, 31697},
		{TrackCloud, 5, 55081},
		{TrackWeb, 10, 56387},
	}
	for _, tc := range tests {
		got, err := PredictSalary(tc.track, tc.years)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s after %v years", tc.track, tc.years)
	}
}

func TestPredictSalaryIsLinearForNonNegativeYears(t *testing.T) {
	for _, track := range Tracks() {
		cfg, err := ConfigFor(track)
		require.NoError(t, err)
		for y := 0; y <= 40; y++ {
			got, err := PredictSalary(track, float64(y))
			require.NoError(t, err)
			assert.Equal(t, cfg.Base+y*cfg.Growth, got, "%s y=%d", track, y)
		}
	}
}

func TestPredictSalaryClampsNegativeYears(t *testing.T) {
	for _, track := range Tracks() {
		cfg, err := ConfigFor(track)
		require.NoError(t, err)
		got, err := PredictSalary(track, -3)
		require.NoError(t, err)
		assert.Equal(t, cfg.Base, got)
	}
}

func TestPredictSalaryFractionalYearsScale(t *testing.T) {
	got, err := PredictSalary(TrackData, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 31697+8500, got)
}

func TestPredictSalaryUnknownTrack(t *testing.T) {
	_, err := PredictSalary(Track("mobile"), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTrack))
}

func TestDisplaySalaryNegativeYearsShowsZero(t *testing.T) {
	f := DefaultFormatter()
	for _, track := range Tracks() {
		for _, y := range []float64{-1, -0.5, -100} {
			got, err := DisplaySalary(f, track, y)
			require.NoError(t, err)
			assert.Equal(t, "0", got, "%s y=%v", track, y)
		}
	}
}

func TestDisplaySalaryGroupsThousands(t *testing.T) {
	f := DefaultFormatter()
	got, err := DisplaySalary(f, TrackCloud, 5)
	require.NoError(t, err)
	assert.Equal(t, "55,081", got)

	got, err = DisplaySalary(f, TrackWeb, 0)
	require.NoError(t, err)
	assert.Equal(t, "9,387", got)
}

func TestPredictorBaseMatchesJuniorMedian(t *testing.T) {
	junior := Trajectory()[0]
	for _, track := range Tracks() {
		cfg, err := ConfigFor(track)
		require.NoError(t, err)
		assert.Equal(t, junior.Salary(track), cfg.Base, track)
	}
}

func TestPredictSalaryRejectsNonFiniteAndOverflowingYears(t *testing.T) {
	for _, y := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e16, 1e20} {
		_, err := PredictSalary(TrackCloud, y)
		require.Error(t, err, "years=%v", y)
		assert.ErrorIs(t, err, ErrInvalidYears, "years=%v", y)
	}
}

func TestPredictSalaryLargeYearsStillScale(t *testing.T) {
	got, err := PredictSalary(TrackCloud, 1e12)
	require.NoError(t, err)
	assert.Equal(t, 37581+3500*1_000_000_000_000, got)
}

func TestDisplaySalaryPropagatesInvalidYears(t *testing.T) {
	_, err := DisplaySalary(DefaultFormatter(), TrackData, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidYears)

	_, err = DisplaySalary(DefaultFormatter(), TrackData, 1e17)
	assert.ErrorIs(t, err, ErrInvalidYears)
}
