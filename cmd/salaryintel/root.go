package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jask/salaryintel/internal/config"
	"github.com/jask/salaryintel/internal/logging"
	"github.com/jask/salaryintel/internal/survey"
	"github.com/jask/salaryintel/internal/tui"
)

// env is the state every subcommand shares, filled in by the root's
// PersistentPreRunE.
type env struct {
	configPath string

	cfg     config.Config
	format  *survey.Formatter
	log     *logrus.Entry
	logFile *os.File
}

// run executes root and releases the shared env afterwards. Cobra skips
// PersistentPostRun hooks when RunE fails, so the log file is closed here.
func run(root *cobra.Command, e *env) error {
	err := root.Execute()
	if cerr := e.close(); err == nil && cerr != nil {
		err = fmt.Errorf("close log file: %w", cerr)
	}
	return err
}

func newRootCmd() (*cobra.Command, *env) {
	e := &env{}
	root := &cobra.Command{
		Use:   "salaryintel",
		Short: "Salary intelligence dashboard",
		Long: `salaryintel presents 2025 developer salary survey statistics: career
trajectories by track, the education impact and a linear salary predictor.

Run without a subcommand to open the dashboard.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return e.setup(cmd)
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(e)
		},
	}
	root.PersistentFlags().StringVar(&e.configPath, "config", "", "config file (default: $SALARYINTEL_CONFIG or <user config dir>/salaryintel/config.toml)")

	root.AddCommand(newPredictCmd(e))
	root.AddCommand(newTablesCmd(e))
	root.AddCommand(newConfigCmd(e))
	root.AddCommand(newVersionCmd())
	return root, e
}

func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	e.cfg = cfg

	format, err := survey.NewFormatter(cfg.UI.Locale, cfg.UI.Currency)
	if err != nil {
		return fmt.Errorf("formatter: %w", err)
	}
	e.format = format

	logger := logging.Discard()
	if cfg.Log.Level != "silent" {
		f, l, err := logging.FileLogger(logging.Level(cfg.Log.Level), cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warn: logging disabled: %v\n", err)
		} else {
			e.logFile = f
			logger = l
		}
	}
	e.log = logging.Session(logger).WithField("command", cmd.Name())
	return nil
}

func (e *env) close() error {
	if e.logFile == nil {
		return nil
	}
	err := e.logFile.Close()
	e.logFile = nil
	return err
}

func runDashboard(e *env) error {
	view, _ := tui.ParseView(e.cfg.UI.DefaultView)
	track, err := survey.ParseTrack(e.cfg.UI.DefaultTrack)
	if err != nil {
		track = survey.TrackData
	}
	e.log.WithFields(logrus.Fields{"view": string(view), "track": string(track)}).Info("dashboard started")

	app := tui.New(tui.Options{
		Formatter: e.format,
		Logger:    e.log,
		View:      view,
		Track:     track,
	})
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	e.log.Info("dashboard closed")
	return nil
}
