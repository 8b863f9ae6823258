package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/salaryintel/internal/survey"
	"github.com/jask/salaryintel/internal/tui"
	"github.com/jask/salaryintel/internal/tui/widgets"
)

type trajectoryRow struct {
	Level string `json:"level"`
	Cloud int    `json:"cloud"`
	Data  int    `json:"data"`
	Web   int    `json:"web"`
}

type educationRow struct {
	Level     string `json:"level"`
	Bachelors int    `json:"bachelors"`
	Masters   int    `json:"masters"`
}

type tablesOutput struct {
	Trajectory []trajectoryRow `json:"trajectory"`
	Education  []educationRow  `json:"education"`
}

func newTablesCmd(e *env) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the survey tables behind the dashboard charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(tablesJSON(), "", "  ")
				if err != nil {
					return fmt.Errorf("marshal tables: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			headers := []string{"Level", survey.TrackCloud.Label(), survey.TrackData.Label(), survey.TrackWeb.Label()}
			fmt.Fprintln(out, "Market-Wide Career Trajectories (USD)")
			fmt.Fprintln(out, widgets.Table(headers, tui.TrajectoryRows(e.format), 0))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Education Impact Analysis")
			fmt.Fprintln(out, widgets.Table([]string{"Level", "Bachelor's", "Master's"}, tui.EducationRows(e.format), 0))
			if lvl, ok := survey.EducationCrossover(); ok {
				fmt.Fprintf(out, "Bachelor's catch up at %s level.\n", lvl)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func tablesJSON() tablesOutput {
	var out tablesOutput
	for _, r := range survey.Trajectory() {
		out.Trajectory = append(out.Trajectory, trajectoryRow{Level: r.Level.String(), Cloud: r.Cloud, Data: r.Data, Web: r.Web})
	}
	for _, r := range survey.Education() {
		out.Education = append(out.Education, educationRow{Level: r.Level.String(), Bachelors: r.Bachelors, Masters: r.Masters})
	}
	return out
}
