package tui

import "testing"

func TestLookupFallsBackToGlobal(t *testing.T) {
	r := NewKeyRegistry()
	if b := r.Lookup("e", scopePredictor); b == nil || b.Action != actionGoEducation {
		t.Fatalf("expected global education binding from predictor scope, got %+v", b)
	}
	if b := r.Lookup("W", scopePredictor); b != nil {
		t.Fatalf("shifted letters are distinct keys, got %+v", b)
	}
	if b := r.Lookup("CTRL+C", scopePredictor); b == nil || b.Action != actionQuit {
		t.Fatalf("multi-rune key names should match case-insensitively, got %+v", b)
	}
	if b := r.Lookup("w", scopeOverview); b != nil {
		t.Fatalf("track keys must not leak into overview, got %+v", b)
	}
	if b := r.Lookup("", scopeGlobal); b != nil {
		t.Fatalf("empty key should not resolve")
	}
}

func TestRegisterIgnoresTakenKeys(t *testing.T) {
	r := NewKeyRegistry()
	r.Register(Binding{Action: "other", Keys: []string{"q"}, Help: "other", Scopes: []string{scopeGlobal}})
	if b := r.Lookup("q", scopeGlobal); b == nil || b.Action != actionQuit {
		t.Fatalf("existing binding should win, got %+v", b)
	}
}

func TestHelpBindingsIncludeScopeThenGlobal(t *testing.T) {
	r := NewKeyRegistry()
	help := r.HelpBindings(scopePredictor)
	if len(help) == 0 {
		t.Fatalf("expected help bindings")
	}
	if got := help[0].Help().Key; got != "w" {
		t.Fatalf("first help key = %q, want w", got)
	}
	last := help[len(help)-1].Help()
	if last.Key != "q" || last.Desc != "quit" {
		t.Fatalf("last help = %+v, want q quit", last)
	}
	for _, h := range help {
		if h.Help().Desc == "" {
			t.Fatalf("bindings without help text should be skipped")
		}
	}
}

func TestNormalizeKeyName(t *testing.T) {
	cases := map[string]string{
		" ":           "space",
		"Control+C":   "ctrl+c",
		" shift+tab ": "shift+tab",
		"Return":      "enter",
	}
	for in, want := range cases {
		if got := normalizeKeyName(in); got != want {
			t.Fatalf("normalizeKeyName(%q) = %q, want %q", in, got, want)
		}
	}
}
