package tui

import "strings"

// View names one of the dashboard's content branches.
type View string

const (
	ViewOverview  View = "overview"
	ViewEducation View = "education"
	ViewPredictor View = "predictor"
)

func Views() []View {
	return []View{ViewOverview, ViewEducation, ViewPredictor}
}

func ParseView(s string) (View, bool) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Views() {
		if v == known {
			return v, true
		}
	}
	return "", false
}

func (v View) Label() string {
	switch v {
	case ViewOverview:
		return "Overview"
	case ViewEducation:
		return "Education Impact"
	case ViewPredictor:
		return "Salary Predictor"
	}
	return ""
}

func (v View) scope() string {
	switch v {
	case ViewOverview:
		return scopeOverview
	case ViewEducation:
		return scopeEducation
	case ViewPredictor:
		return scopePredictor
	}
	return scopeGlobal
}

// Router holds the active view. Any value is accepted; a view outside the
// known set renders an empty body.
type Router struct {
	active View
}

func NewRouter(initial View) Router {
	return Router{active: initial}
}

func (r *Router) SetActiveView(v View) {
	r.active = v
}

func (r Router) Active() View {
	return r.active
}

func (r *Router) Next() {
	r.step(1)
}

func (r *Router) Prev() {
	r.step(-1)
}

func (r *Router) step(delta int) {
	views := Views()
	idx := -1
	for i, v := range views {
		if v == r.active {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.active = views[0]
		return
	}
	r.active = views[(idx+delta+len(views))%len(views)]
}
