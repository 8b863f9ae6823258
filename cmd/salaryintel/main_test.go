package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/salaryintel/internal/survey"
)

// isolate points every config and cache lookup at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("SALARYINTEL_CONFIG", "")
	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd, e := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := run(cmd, e)
	return out.String(), errOut.String(), err
}

func TestPredictText(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "predict", "--track", "cloud", "--years", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Cloud & DevOps")
	assert.Contains(t, out, "$55,081")
}

func TestPredictJSON(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "predict", "--track", "data", "--json")
	require.NoError(t, err)

	var p prediction
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, survey.TrackData, p.Track)
	assert.Equal(t, 31697, p.Salary)
	assert.Equal(t, "$31,697", p.Display)
	assert.Equal(t, 3400, p.Growth)
}

func TestPredictNegativeYearsDisplaysZero(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "predict", "-t", "web", "--years=-3", "--json")
	require.NoError(t, err)

	var p prediction
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, 9387, p.Salary, "the model clamps to zero years")
	assert.Equal(t, "$0", p.Display)

	out, errOut, err := execute(t, "predict", "-t", "web", "--years=-3")
	require.NoError(t, err)
	assert.Contains(t, out, "$0")
	assert.Contains(t, errOut, "cannot be negative")
}

func TestPredictUnknownTrackSuggests(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "predict", "--track", "clod")
	require.Error(t, err)
	assert.ErrorIs(t, err, survey.ErrUnknownTrack)
	assert.Contains(t, err.Error(), `did you mean "cloud"`)
}

func TestPredictRejectsOutOfRangeYears(t *testing.T) {
	isolate(t)
	for _, years := range []string{"1e16", "1e17", "+Inf", "NaN"} {
		out, _, err := execute(t, "predict", "--track", "data", "--years="+years, "--json")
		require.Error(t, err, "years=%s", years)
		assert.ErrorIs(t, err, survey.ErrInvalidYears, "years=%s", years)
		assert.Empty(t, out, "years=%s", years)
	}
}

func TestPredictUsesConfiguredDefaultTrack(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "salaryintel.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ndefault_track = \"web\"\n"), 0o644))

	out, _, err := execute(t, "--config", path, "predict", "--years", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Web Dev")
	assert.Contains(t, out, "$56,387")
}

func TestPredictLogsToFile(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "logs", "run.log")
	t.Setenv("SALARYINTEL_LOG_LEVEL", "info")
	t.Setenv("SALARYINTEL_LOG_PATH", logPath)

	_, _, err := execute(t, "predict", "--track", "cloud", "--years", "1")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.Contains(t, line, `"msg":"prediction"`)
	assert.Contains(t, line, `"session"`)
	assert.Contains(t, line, `"salary":41081`)
}

func TestLogFileClosedWhenCommandFails(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "logs", "run.log")
	t.Setenv("SALARYINTEL_LOG_PATH", logPath)

	cmd, e := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"predict", "--track", "mobile"})

	err := run(cmd, e)
	require.ErrorIs(t, err, survey.ErrUnknownTrack)
	_, statErr := os.Stat(logPath)
	require.NoError(t, statErr, "setup should have opened the log file")
	assert.Nil(t, e.logFile, "log file should be released after a failed command")
}

func TestMissingConfigFileFails(t *testing.T) {
	dir := isolate(t)
	_, _, err := execute(t, "--config", filepath.Join(dir, "nope.toml"), "tables")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestTablesText(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "tables")
	require.NoError(t, err)
	assert.Contains(t, out, "Market-Wide Career Trajectories (USD)")
	assert.Contains(t, out, "107,951")
	assert.Contains(t, out, "115,000")
	assert.Contains(t, out, "Bachelor's catch up at Expert level.")
}

func TestTablesJSON(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "tables", "--json")
	require.NoError(t, err)

	var got tablesOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Trajectory, 5)
	require.Len(t, got.Education, 5)
	assert.Equal(t, trajectoryRow{Level: "Junior", Cloud: 37581, Data: 31697, Web: 9387}, got.Trajectory[0])
	assert.Equal(t, educationRow{Level: "Veteran", Bachelors: 115000, Masters: 105000}, got.Education[4])
}

func TestConfigPrintsEffectiveSettings(t *testing.T) {
	isolate(t)
	t.Setenv("SALARYINTEL_UI_CURRENCY", "eur")
	out, _, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[ui]")
	assert.Contains(t, out, `locale = "en-US"`)
	assert.Contains(t, out, `currency = "EUR"`)
	assert.Contains(t, out, "[log]")
}

func TestConfigSurvivesBadLocaleAndCurrency(t *testing.T) {
	isolate(t)
	t.Setenv("SALARYINTEL_UI_LOCALE", "not a locale!")
	t.Setenv("SALARYINTEL_UI_CURRENCY", "XXXX")
	out, _, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, `locale = "en-US"`)
	assert.Contains(t, out, `currency = "USD"`)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "salaryintel dev\n", out)
}
