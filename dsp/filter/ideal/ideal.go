package ideal

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-response/dsp/filter/biquad"
	"github.com/cwbudde/algo-response/dsp/filter/design"
	"github.com/cwbudde/algo-response/dsp/param"
)

// paramEps gates gain/Q writes so host automation jitter below this
// threshold does not trigger a cascade redesign.
const paramEps = 1e-6

// Filter holds the coefficient cascade of an ideal prototype filter and
// evaluates its frequency response and magnitude curves.
//
// Setters are safe to call from a single control goroutine at any rate;
// UpdateResponse/UpdateMagnitude are called by the audio goroutine once
// per block and recompute the cascade only when a parameter changed.
// Buffer sizing (PrepareResponseSize, PrepareDBSize) is control-path
// setup only and must not race with an in-progress update.
type Filter struct {
	coeffs   [design.MaxSections]biquad.Coefficients
	sections int

	dirty param.Flag

	freq  param.Float
	gain  param.Float
	q     param.Float
	fs    param.Float
	order param.Int
	typ   param.Int

	// Audio-side copy of the sample rate, refreshed on each redesign.
	sampleRate float64

	response []complex128
	gains    []float64
	scratch  []float64
	dbs      []float64
}

// New returns a Filter with a 1 kHz, 0 dB, Q=0.707 second-order peak at
// 48 kHz, marked for recomputation.
func New() *Filter {
	f := &Filter{sections: 1, sampleRate: 48000}

	f.coeffs[0] = biquad.Identity()
	f.freq.Store(1000)
	f.q.Store(0.707)
	f.fs.Store(48000)
	f.order.Store(2)
	f.typ.Store(int(design.Peak))
	f.dirty.Mark()

	return f
}

// Prepare stores the sample rate and marks the cascade dirty.
func (f *Filter) Prepare(sampleRate float64) {
	f.fs.Store(sampleRate)
	f.dirty.Mark()
}

// SetFreq stores the center/cutoff frequency in Hz.
func (f *Filter) SetFreq(v float64) {
	f.freq.Store(v)
	f.dirty.Mark()
}

// Freq returns the center/cutoff frequency in Hz.
func (f *Filter) Freq() float64 { return f.freq.Load() }

// SetGain stores the gain in dB. Writes within paramEps of the current
// value are ignored.
func (f *Filter) SetGain(v float64) {
	if f.gain.StoreIfChanged(v, paramEps) {
		f.dirty.Mark()
	}
}

// Gain returns the gain in dB.
func (f *Filter) Gain() float64 { return f.gain.Load() }

// SetQ stores the quality factor. Writes within paramEps of the current
// value are ignored.
func (f *Filter) SetQ(v float64) {
	if f.q.StoreIfChanged(v, paramEps) {
		f.dirty.Mark()
	}
}

// Q returns the quality factor.
func (f *Filter) Q() float64 { return f.q.Load() }

// SetFilterType stores the filter type.
func (f *Filter) SetFilterType(t design.FilterType) {
	f.typ.Store(int(t))
	f.dirty.Mark()
}

// FilterType returns the filter type.
func (f *Filter) FilterType() design.FilterType {
	return design.FilterType(f.typ.Load())
}

// SetOrder stores the filter order. The effective order is clamped by
// the cascade designer.
func (f *Filter) SetOrder(n int) {
	f.order.Store(n)
	f.dirty.Mark()
}

// Order returns the filter order.
func (f *Filter) Order() int { return f.order.Load() }

// MarkDirty forces a recomputation on the next update call.
func (f *Filter) MarkDirty() { f.dirty.Mark() }

// MagnitudeOutdated reports whether cached curves are stale relative to
// the latest parameter writes, without consuming the dirty flag.
func (f *Filter) MagnitudeOutdated() bool { return f.dirty.Peek() }

// PrepareResponseSize sizes the complex response buffer and resets it
// to unity gain. Control-path only.
func (f *Filter) PrepareResponseSize(n int) {
	f.response = make([]complex128, n)
	for i := range f.response {
		f.response[i] = 1
	}
}

// PrepareDBSize sizes the magnitude and decibel buffers. Control-path
// only.
func (f *Filter) PrepareDBSize(n int) {
	f.dbs = make([]float64, n)
	f.gains = make([]float64, n)
	f.scratch = make([]float64, n)
}

// UpdateResponse recomputes the coefficient cascade if a parameter
// changed and re-evaluates the complex frequency response at freqs
// (Hz), whose length must match the prepared response size. It returns
// whether recomputation occurred. Allocation-free.
func (f *Filter) UpdateResponse(freqs []float64) bool {
	if !f.dirty.Consume() {
		return false
	}

	f.redesign()

	for i := range f.response {
		f.response[i] = 1
	}

	for i := 0; i < f.sections; i++ {
		biquad.AccumulateResponse(f.coeffs[i], freqs, f.sampleRate, f.response)
	}

	return true
}

// UpdateMagnitude recomputes the coefficient cascade if a parameter
// changed and re-evaluates the magnitude curve at freqs (Hz), whose
// length must match the prepared dB size, converting it to decibels.
// It returns whether recomputation occurred. Allocation-free.
func (f *Filter) UpdateMagnitude(freqs []float64) bool {
	if !f.dirty.Consume() {
		return false
	}

	f.redesign()

	for i := range f.gains {
		f.gains[i] = 1
	}

	for i := 0; i < f.sections; i++ {
		biquad.AccumulateMagnitude(f.coeffs[i], freqs, f.sampleRate, f.scratch, f.gains)
	}

	biquad.MagnitudeToDB(f.dbs, f.gains)

	return true
}

// AddDBs adds the cached decibel curve into dst elementwise. dst must
// have the prepared dB size. Pure; never recomputes.
func (f *Filter) AddDBs(dst []float64) {
	vecmath.AddBlockInPlace(dst, f.dbs)
}

// DB evaluates the current cascade's magnitude at a single frequency
// (Hz) and returns it in decibels. It reflects the most recently
// computed cascade; callers wanting fresh coefficients must run
// UpdateResponse or UpdateMagnitude first.
func (f *Filter) DB(freqHz float64) float64 {
	g := 1.0
	for i := 0; i < f.sections; i++ {
		g *= f.coeffs[i].Magnitude(freqHz, f.sampleRate)
	}

	return 20 * math.Log10(math.Max(g, biquad.MagnitudeFloor))
}

// Response returns the complex response buffer.
func (f *Filter) Response() []complex128 { return f.response }

// DBs returns the cached decibel curve.
func (f *Filter) DBs() []float64 { return f.dbs }

// Sections returns the number of active sections in the cascade.
func (f *Filter) Sections() int { return f.sections }

// Coefficient returns the i-th active section's coefficients.
func (f *Filter) Coefficient(i int) biquad.Coefficients { return f.coeffs[i] }

// redesign reads each parameter slot once and rebuilds the cascade.
// A write landing after a slot was read re-marks the dirty flag and is
// applied on the next update.
func (f *Filter) redesign() {
	f.sampleRate = f.fs.Load()
	f.sections = design.Cascade(
		design.FilterType(f.typ.Load()), f.order.Load(),
		f.freq.Load(), f.sampleRate,
		f.gain.Load(), f.q.Load(),
		&f.coeffs,
	)
}
