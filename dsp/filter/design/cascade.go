package design

import (
	"math"

	"github.com/cwbudde/algo-response/dsp/filter/biquad"
)

// Cascade designs a full filter of the given type and order into out
// and returns the number of sections written (always between 1 and
// MaxSections). Unwritten slots are left untouched.
//
// Order composition:
//   - LowPass/HighPass: order 1 is a single first-order section, order
//     2 a single section with the caller's Q. Higher orders use
//     Butterworth pole Qs with a first-order tail for odd orders.
//     gainDB is ignored.
//   - LowShelf/HighShelf/TiltShelf: (order+1)/2 sections, gain split
//     evenly in dB; odd orders end with a first-order shelf.
//   - Peak/BandPass/Notch: order/2 identical sections (minimum one)
//     with gain split evenly in dB; gainDB is ignored for BandPass and
//     Notch.
//
// The order is clamped to [1, MaxOrder] (gain/band types to a minimum
// of 2). Degenerate frequency or sample-rate parameters produce
// identity sections rather than failing.
func Cascade(typ FilterType, order int, freq, sampleRate, gainDB, q float64, out *[MaxSections]biquad.Coefficients) int {
	switch typ {
	case LowPass, HighPass:
		return passCascade(typ, order, freq, q, sampleRate, out)
	case LowShelf, HighShelf, TiltShelf:
		return shelfCascade(typ, order, freq, gainDB, q, sampleRate, out)
	case Peak, BandPass, Notch:
		return bandCascade(typ, order, freq, gainDB, q, sampleRate, out)
	default:
		out[0] = biquad.Identity()
		return 1
	}
}

func passCascade(typ FilterType, order int, freq, q, sampleRate float64, out *[MaxSections]biquad.Coefficients) int {
	order = clampOrder(order, 1)

	if order == 1 {
		out[0] = firstOrderPass(typ, freq, sampleRate)
		return 1
	}

	if order == 2 {
		out[0] = secondOrderPass(typ, freq, q, sampleRate)
		return 1
	}

	n := 0
	for i := order/2 - 1; i >= 0; i-- {
		out[n] = secondOrderPass(typ, freq, butterworthQ(order, i), sampleRate)
		n++
	}

	if order%2 != 0 {
		out[n] = firstOrderPass(typ, freq, sampleRate)
		n++
	}

	return n
}

func shelfCascade(typ FilterType, order int, freq, gainDB, q, sampleRate float64, out *[MaxSections]biquad.Coefficients) int {
	order = clampOrder(order, 1)
	n := (order + 1) / 2
	gs := gainDB / float64(n)

	for i := 0; i < order/2; i++ {
		out[i] = secondOrderShelf(typ, freq, gs, q, sampleRate)
	}

	if order%2 != 0 {
		out[n-1] = firstOrderShelf(typ, freq, gs, sampleRate)
	}

	return n
}

func bandCascade(typ FilterType, order int, freq, gainDB, q, sampleRate float64, out *[MaxSections]biquad.Coefficients) int {
	order = clampOrder(order, 2)
	n := order / 2
	gs := gainDB / float64(n)

	for i := 0; i < n; i++ {
		switch typ {
		case Peak:
			out[i] = PeakEQ(freq, gs, q, sampleRate)
		case BandPass:
			out[i] = Bandpass(freq, q, sampleRate)
		case Notch:
			out[i] = NotchEQ(freq, q, sampleRate)
		}
	}

	return n
}

func firstOrderPass(typ FilterType, freq, sampleRate float64) biquad.Coefficients {
	if typ == HighPass {
		return FirstOrderHighpass(freq, sampleRate)
	}

	return FirstOrderLowpass(freq, sampleRate)
}

func secondOrderPass(typ FilterType, freq, q, sampleRate float64) biquad.Coefficients {
	if typ == HighPass {
		return Highpass(freq, q, sampleRate)
	}

	return Lowpass(freq, q, sampleRate)
}

func firstOrderShelf(typ FilterType, freq, gainDB, sampleRate float64) biquad.Coefficients {
	switch typ {
	case HighShelf:
		return FirstOrderHighShelf(freq, gainDB, sampleRate)
	case TiltShelf:
		return FirstOrderTiltShelf(freq, gainDB, sampleRate)
	default:
		return FirstOrderLowShelf(freq, gainDB, sampleRate)
	}
}

func secondOrderShelf(typ FilterType, freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	switch typ {
	case HighShelf:
		return HighShelfEQ(freq, gainDB, q, sampleRate)
	case TiltShelf:
		return TiltShelfEQ(freq, gainDB, q, sampleRate)
	default:
		return LowShelfEQ(freq, gainDB, q, sampleRate)
	}
}

func clampOrder(order, min int) int {
	if order < min {
		return min
	}

	if order > MaxOrder {
		return MaxOrder
	}

	return order
}

func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}

	return 1 / (2 * s)
}
