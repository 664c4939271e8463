package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// MagnitudeFloor is the smallest linear magnitude considered before
// conversion to decibels. It keeps near-zero responses finite:
// 20*log10(1e-12) = -240 dB.
const MagnitudeFloor = 1e-12

// Response computes the complex frequency response H(e^jw) of a biquad
// at the given frequency (Hz) and sample rate (Hz).
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w

	return num / den
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression,
// avoiding complex exponentials.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw

	return num / den
}

// Magnitude returns |H(f)|.
func (c *Coefficients) Magnitude(freqHz, sampleRate float64) float64 {
	m2 := c.MagnitudeSquared(freqHz, sampleRate)
	if m2 <= 0 {
		return 0
	}

	return math.Sqrt(m2)
}

// Phase returns the phase response in radians at the given frequency.
// The result is in [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// AccumulateResponse multiplies the section's complex response at each
// frequency into acc. freqs and acc must have the same length.
// Zero-alloc; cascades accumulate by calling this once per section.
func AccumulateResponse(c Coefficients, freqs []float64, sampleRate float64, acc []complex128) {
	for i, f := range freqs {
		acc[i] *= c.Response(f, sampleRate)
	}
}

// AccumulateMagnitude multiplies the section's linear magnitude at each
// frequency into acc, using scratch for the per-section values.
// freqs, scratch and acc must have the same length. Zero-alloc.
func AccumulateMagnitude(c Coefficients, freqs []float64, sampleRate float64, scratch, acc []float64) {
	for i, f := range freqs {
		scratch[i] = c.Magnitude(f, sampleRate)
	}

	vecmath.MulBlockInPlace(acc, scratch)
}

// MagnitudeToDB converts linear magnitudes to decibels elementwise:
// dst[i] = 20*log10(max(mags[i], MagnitudeFloor)). dst and mags must
// have the same length.
func MagnitudeToDB(dst, mags []float64) {
	for i, m := range mags {
		dst[i] = 20 * math.Log10(math.Max(m, MagnitudeFloor))
	}
}
