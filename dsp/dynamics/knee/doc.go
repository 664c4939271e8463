// Package knee provides a compressor gain computer with a smooth knee.
//
// A [Computer] maps input level (dB) to output level (dB) through a
// piecewise curve: identity below the knee, a quadratic knee region,
// and a shaped region at and above the knee blended between a linear
// (constant-ratio) curve and a concave-down or convex-up archetype.
// Both quadratic pieces meet with matching value and slope at the upper
// knee boundary.
//
// Parameters are written lock-free from a control goroutine; the audio
// goroutine calls [Computer.Update] per block (or per sample) to apply
// pending changes, then evaluates [Computer.Process] at arbitrary
// levels.
package knee
