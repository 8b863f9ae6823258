package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/salaryintel/internal/logging"
	"github.com/jask/salaryintel/internal/survey"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
	yearsRunes    = "0123456789.-"
)

// Options seed the dashboard state. Zero values fall back to the overview
// view, the data track, the en-US/USD formatter and a discarding logger.
type Options struct {
	Formatter *survey.Formatter
	Logger    *logrus.Entry
	View      View
	Track     survey.Track
}

// App is the dashboard model: the active view plus the predictor inputs.
type App struct {
	router Router
	keys   *KeyRegistry
	format *survey.Formatter
	log    *logrus.Entry

	track      survey.Track
	years      textinput.Model
	yearsValue float64
	yearsState yearsState
	showTables bool

	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

type yearsState int

const (
	yearsOK yearsState = iota
	yearsNegative
	yearsInvalid
)

func New(opts Options) *App {
	format := opts.Formatter
	if format == nil {
		format = survey.DefaultFormatter()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Session(logging.Discard())
	}
	view := opts.View
	if view == "" {
		view = ViewOverview
	}
	track := opts.Track
	if !track.Valid() {
		track = survey.TrackData
	}

	years := textinput.New()
	years.Prompt = ""
	years.Placeholder = "0"
	years.CharLimit = 12
	years.Width = 14
	years.Focus()

	a := &App{
		router:     NewRouter(view),
		keys:       NewKeyRegistry(),
		format:     format,
		log:        log,
		track:      track,
		years:      years,
		showTables: true,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	a.SetYears("0")
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) ActiveView() View { return a.router.Active() }

func (a *App) Track() survey.Track { return a.track }

func (a *App) YearsInput() string { return a.years.Value() }

func (a *App) Years() float64 { return a.yearsValue }

// SetActiveView switches the content branch. Predictor inputs survive the
// switch.
func (a *App) SetActiveView(v View) {
	prev := a.router.Active()
	a.router.SetActiveView(v)
	if prev == v {
		return
	}
	a.log.WithFields(logrus.Fields{"from": string(prev), "to": string(v)}).Debug("view switched")
	if label := v.Label(); label != "" {
		a.setStatus("Viewing " + label)
	}
}

// SelectTrack changes the predictor track without touching the years field.
func (a *App) SelectTrack(t survey.Track) {
	if !t.Valid() || t == a.track {
		return
	}
	a.track = t
	a.log.WithField("track", string(t)).Debug("track selected")
	a.setStatus("Track: " + t.Label())
}

// SetYears replaces the years field content and re-evaluates it.
func (a *App) SetYears(s string) {
	a.years.SetValue(s)
	a.years.CursorEnd()
	a.parseYears()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	// cursor blink ticks keep cycling whichever view is showing
	var cmd tea.Cmd
	a.years, cmd = a.years.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.router.Active() == ViewPredictor && isYearsKey(msg) {
		var cmd tea.Cmd
		a.years, cmd = a.years.Update(msg)
		a.parseYears()
		return a, cmd
	}

	b := a.keys.Lookup(msg.String(), a.router.Active().scope())
	if b == nil {
		return a, nil
	}
	switch b.Action {
	case actionQuit:
		a.quitting = true
		return a, tea.Quit
	case actionNextView:
		r := a.router
		r.Next()
		a.SetActiveView(r.Active())
	case actionPrevView:
		r := a.router
		r.Prev()
		a.SetActiveView(r.Active())
	case actionGoOverview:
		a.SetActiveView(ViewOverview)
	case actionGoEducation:
		a.SetActiveView(ViewEducation)
	case actionGoPredictor:
		a.SetActiveView(ViewPredictor)
	case actionTrackWeb:
		a.SelectTrack(survey.TrackWeb)
	case actionTrackData:
		a.SelectTrack(survey.TrackData)
	case actionTrackCloud:
		a.SelectTrack(survey.TrackCloud)
	case actionPrevTrack:
		a.SelectTrack(cycleTrack(a.track, -1))
	case actionNextTrack:
		a.SelectTrack(cycleTrack(a.track, 1))
	case actionClearYears:
		a.SetYears("0")
		a.setStatus("Years reset")
	case actionToggleTables:
		a.showTables = !a.showTables
	}
	return a, nil
}

func isYearsKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if !strings.ContainsRune(yearsRunes, r) {
				return false
			}
		}
		return true
	}
	return false
}

// parseYears treats an empty field (or a lone sign or point) as zero, the
// way a numeric form field reads while it is being edited.
func (a *App) parseYears() {
	raw := strings.TrimSpace(a.years.Value())
	prevState := a.yearsState
	switch raw {
	case "", "-", ".", "-.":
		a.yearsValue = 0
		a.yearsState = yearsOK
	default:
		v, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			a.yearsValue = 0
			a.yearsState = yearsInvalid
		case v < 0:
			a.yearsValue = v
			a.yearsState = yearsNegative
		default:
			a.yearsValue = v
			a.yearsState = yearsOK
		}
	}
	if a.yearsState == prevState {
		return
	}
	switch a.yearsState {
	case yearsNegative:
		a.log.WithField("input", raw).Warn("negative years of experience")
		a.setError("Years of experience cannot be negative")
	case yearsInvalid:
		a.log.WithField("input", raw).Warn("unparseable years of experience")
		a.setError("Years of experience must be a number")
	default:
		a.setStatus("Ready")
	}
}

// SalaryFigure is the predictor result as shown, currency symbol included.
// Negative or unparseable input shows zero.
func (a *App) SalaryFigure() string {
	if a.yearsState == yearsInvalid {
		return a.format.Symbol() + "0"
	}
	s, err := survey.DisplaySalary(a.format, a.track, a.yearsValue)
	if err != nil {
		a.log.WithError(err).Error("salary display")
		return a.format.Symbol() + "0"
	}
	return a.format.Symbol() + s
}

func cycleTrack(current survey.Track, delta int) survey.Track {
	tracks := survey.Tracks()
	for i, t := range tracks {
		if t == current {
			return tracks[(i+delta+len(tracks))%len(tracks)]
		}
	}
	return tracks[0]
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(msg string) {
	a.status = msg
	a.statusErr = true
}
