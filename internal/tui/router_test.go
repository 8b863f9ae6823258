package tui

import "testing"

func TestRouterCycles(t *testing.T) {
	r := NewRouter(ViewOverview)
	r.Next()
	r.Next()
	if got := r.Active(); got != ViewPredictor {
		t.Fatalf("active = %q, want predictor", got)
	}
	r.Next()
	if got := r.Active(); got != ViewOverview {
		t.Fatalf("next should wrap, got %q", got)
	}
	r.Prev()
	if got := r.Active(); got != ViewPredictor {
		t.Fatalf("prev should wrap, got %q", got)
	}
}

func TestRouterAcceptsUnknownView(t *testing.T) {
	r := NewRouter(ViewEducation)
	r.SetActiveView(View("reports"))
	if got := r.Active(); got != View("reports") {
		t.Fatalf("active = %q", got)
	}
	if got := r.Active().Label(); got != "" {
		t.Fatalf("unknown view label = %q", got)
	}
	r.Next()
	if got := r.Active(); got != ViewOverview {
		t.Fatalf("cycling from an unknown view should restart, got %q", got)
	}
}

func TestParseView(t *testing.T) {
	if v, ok := ParseView(" Predictor "); !ok || v != ViewPredictor {
		t.Fatalf("ParseView = %q %v", v, ok)
	}
	if _, ok := ParseView("settings"); ok {
		t.Fatalf("settings is not a view")
	}
}
