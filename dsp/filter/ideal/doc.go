// Package ideal provides an analytic filter response engine: a
// parameterized prototype filter whose coefficient cascade is rebuilt
// lazily on the audio thread and evaluated as complex frequency
// response or decibel magnitude curves.
//
// It does not process audio; it answers "what would this filter do at
// these frequencies", which UIs and analyzers consume per block.
package ideal
