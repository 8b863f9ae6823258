package main

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jask/salaryintel/internal/survey"
)

// prediction is the --json shape of the predict command. Salary is the clamped
// model output; Display follows the dashboard and reads 0 for negative years.
type prediction struct {
	Track   survey.Track `json:"track"`
	Years   float64      `json:"years"`
	Base    int          `json:"base"`
	Growth  int          `json:"growth"`
	Salary  int          `json:"salary"`
	Display string       `json:"display"`
}

func newPredictCmd(e *env) *cobra.Command {
	var (
		trackName string
		years     float64
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Project an annual salary for a track and years of experience",
		Long: `Predict evaluates base + years * growth for the chosen career track.

Tracks: web, data, cloud. The track defaults to ui.default_track.

Example:
  salaryintel predict --track cloud --years 5
  salaryintel predict --track data --years 2.5 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if trackName == "" {
				trackName = e.cfg.UI.DefaultTrack
			}
			track, err := survey.ParseTrack(trackName)
			if err != nil {
				return err
			}
			p, err := predict(e.format, track, years)
			if err != nil {
				return err
			}
			e.log.WithFields(logrus.Fields{"track": string(track), "years": years, "salary": p.Salary}).Info("prediction")

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(p, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal prediction: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintf(out, "Projected annual salary (%s, %g years): %s\n", track.Label(), years, p.Display)
			if years < 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "warn: years of experience cannot be negative")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&trackName, "track", "t", "", "career track: web, data or cloud")
	cmd.Flags().Float64VarP(&years, "years", "y", 0, "years of experience")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func predict(f *survey.Formatter, track survey.Track, years float64) (prediction, error) {
	cfg, err := survey.ConfigFor(track)
	if err != nil {
		return prediction{}, err
	}
	salary, err := survey.PredictSalary(track, years)
	if err != nil {
		return prediction{}, fmt.Errorf("predict salary: %w", err)
	}
	display, err := survey.DisplaySalary(f, track, years)
	if err != nil {
		return prediction{}, fmt.Errorf("display salary: %w", err)
	}
	return prediction{
		Track:   track,
		Years:   years,
		Base:    cfg.Base,
		Growth:  cfg.Growth,
		Salary:  salary,
		Display: f.Symbol() + display,
	}, nil
}
