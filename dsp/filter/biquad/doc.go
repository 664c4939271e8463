// Package biquad provides second-order IIR section primitives.
//
// [Coefficients] describes a single normalized section. [Section] adds
// Direct Form II Transposed runtime state for actually filtering
// samples. Frequency-domain evaluators ([Coefficients.Response],
// [Coefficients.MagnitudeSquared]) and the vector accumulation helpers
// ([AccumulateResponse], [AccumulateMagnitude]) serve response-curve
// computation for cascades, where the combined response is the product
// of the per-section responses.
//
// Coefficient design (lowpass, shelf, peak, etc.) lives in
// dsp/filter/design.
package biquad
