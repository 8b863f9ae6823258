// Package survey holds the pre-computed salary survey tables and the linear
// salary predictor derived from them.
//
// Everything here is immutable and defined at package load. Callers read the
// tables through accessor functions that return copies.
package survey
