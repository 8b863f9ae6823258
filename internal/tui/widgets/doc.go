// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, charts, tables)
//
// Not allowed here:
// - key handling, view routing, or predictor state
package widgets
