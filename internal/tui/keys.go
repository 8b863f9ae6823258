package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry resolves key names to actions per scope, falling back to the
// global scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal    = "global"
	scopeOverview  = "overview"
	scopeEducation = "education"
	scopePredictor = "predictor"
)

const (
	actionQuit         Action = "quit"
	actionNextView     Action = "next_view"
	actionPrevView     Action = "prev_view"
	actionGoOverview   Action = "go_overview"
	actionGoEducation  Action = "go_education"
	actionGoPredictor  Action = "go_predictor"
	actionTrackWeb     Action = "track_web"
	actionTrackData    Action = "track_data"
	actionTrackCloud   Action = "track_cloud"
	actionPrevTrack    Action = "prev_track"
	actionNextTrack    Action = "next_track"
	actionClearYears   Action = "clear_years"
	actionToggleTables Action = "toggle_tables"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(scopeGlobal, actionGoOverview, []string{"o"}, "overview")
	reg(scopeGlobal, actionGoEducation, []string{"e"}, "education")
	reg(scopeGlobal, actionGoPredictor, []string{"p"}, "predictor")
	reg(scopeGlobal, actionNextView, []string{"tab"}, "next view")
	reg(scopeGlobal, actionPrevView, []string{"shift+tab"}, "prev view")
	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeOverview, actionToggleTables, []string{"t"}, "data table")
	reg(scopeEducation, actionToggleTables, []string{"t"}, "data table")

	reg(scopePredictor, actionTrackWeb, []string{"w"}, "web dev")
	reg(scopePredictor, actionTrackData, []string{"d"}, "data & ai")
	reg(scopePredictor, actionTrackCloud, []string{"c"}, "cloud")
	reg(scopePredictor, actionPrevTrack, []string{"h/l", "h", "left"}, "track")
	reg(scopePredictor, actionNextTrack, []string{"l", "right"}, "")
	reg(scopePredictor, actionClearYears, []string{"esc"}, "reset years")
	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	scopes := b.Scopes
	if len(scopes) == 0 {
		scopes = []string{scopeGlobal}
	}
	for _, scope := range scopes {
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		if b := r.lookupInScope(keyName, scopeGlobal); b != nil {
			return b
		}
	}
	return nil
}

// HelpBindings lists the scope's bindings followed by the global ones.
// Bindings without help text are folded into a sibling's entry.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	if scope != scopeGlobal {
		items = append(items, r.BindingsForScope(scopeGlobal)...)
	}
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 || b.Help == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		if ch := trimmed[0]; ch >= 'A' && ch <= 'Z' {
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
