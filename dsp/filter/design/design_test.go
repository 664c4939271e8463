package design

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-response/dsp/core"
	"github.com/cwbudde/algo-response/dsp/filter/biquad"
)

const sampleRate = 48000.0

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func cascadeMagnitudeDB(coeffs []biquad.Coefficients, freq float64) float64 {
	g := 1.0
	for i := range coeffs {
		g *= coeffs[i].Magnitude(freq, sampleRate)
	}

	return core.LinearToDB(math.Max(g, biquad.MagnitudeFloor))
}

func TestPeakEQ_ZeroGainIsIdentity(t *testing.T) {
	for _, q := range []float64{0.3, 0.707, 4} {
		c := PeakEQ(1000, 0, q, sampleRate)
		if c != biquad.Identity() {
			t.Errorf("q=%v: got %+v, want identity", q, c)
		}
	}
}

func TestLowpass_DCAndStopband(t *testing.T) {
	c := Lowpass(1000, 0.707, sampleRate)

	if !almostEqual(c.Magnitude(0, sampleRate), 1, 1e-9) {
		t.Errorf("DC gain: got %v, want 1", c.Magnitude(0, sampleRate))
	}

	if c.Magnitude(20000, sampleRate) > 1e-2 {
		t.Errorf("stopband gain too high: %v", c.Magnitude(20000, sampleRate))
	}
}

func TestHighpass_NyquistAndStopband(t *testing.T) {
	c := Highpass(1000, 0.707, sampleRate)

	if !almostEqual(c.Magnitude(sampleRate/2, sampleRate), 1, 1e-9) {
		t.Errorf("Nyquist gain: got %v, want 1", c.Magnitude(sampleRate/2, sampleRate))
	}

	if c.Magnitude(20, sampleRate) > 1e-2 {
		t.Errorf("stopband gain too high: %v", c.Magnitude(20, sampleRate))
	}
}

func TestNotchEQ_CenterRejection(t *testing.T) {
	c := NotchEQ(1000, 2, sampleRate)

	if c.Magnitude(1000, sampleRate) > 1e-6 {
		t.Errorf("center gain: got %v, want ~0", c.Magnitude(1000, sampleRate))
	}

	if !almostEqual(c.Magnitude(0, sampleRate), 1, 1e-9) {
		t.Errorf("DC gain: got %v, want 1", c.Magnitude(0, sampleRate))
	}
}

func TestFirstOrderShelves_EdgeGains(t *testing.T) {
	const gainDB = 6.0

	low := FirstOrderLowShelf(1000, gainDB, sampleRate)
	if got := core.LinearToDB(low.Magnitude(0, sampleRate)); !almostEqual(got, gainDB, 1e-9) {
		t.Errorf("low shelf DC: got %v dB, want %v", got, gainDB)
	}

	if got := core.LinearToDB(low.Magnitude(sampleRate/2, sampleRate)); !almostEqual(got, 0, 1e-9) {
		t.Errorf("low shelf Nyquist: got %v dB, want 0", got)
	}

	high := FirstOrderHighShelf(1000, gainDB, sampleRate)
	if got := core.LinearToDB(high.Magnitude(sampleRate/2, sampleRate)); !almostEqual(got, gainDB, 1e-9) {
		t.Errorf("high shelf Nyquist: got %v dB, want %v", got, gainDB)
	}

	if got := core.LinearToDB(high.Magnitude(0, sampleRate)); !almostEqual(got, 0, 1e-9) {
		t.Errorf("high shelf DC: got %v dB, want 0", got)
	}
}

func TestTiltShelf_SymmetricGains(t *testing.T) {
	const gainDB = 8.0

	for _, c := range []biquad.Coefficients{
		TiltShelfEQ(1000, gainDB, 0.707, sampleRate),
		FirstOrderTiltShelf(1000, gainDB, sampleRate),
	} {
		dc := core.LinearToDB(c.Magnitude(0, sampleRate))
		ny := core.LinearToDB(c.Magnitude(sampleRate/2, sampleRate))

		if !almostEqual(dc, -gainDB/2, 1e-9) {
			t.Errorf("DC: got %v dB, want %v", dc, -gainDB/2)
		}

		if !almostEqual(ny, gainDB/2, 1e-9) {
			t.Errorf("Nyquist: got %v dB, want %v", ny, gainDB/2)
		}
	}
}

func TestCascade_SectionCounts(t *testing.T) {
	tests := []struct {
		typ   FilterType
		order int
		want  int
	}{
		{LowPass, 1, 1},
		{LowPass, 2, 1},
		{LowPass, 3, 2},
		{LowPass, 4, 2},
		{LowPass, 16, 8},
		{HighPass, 5, 3},
		{LowShelf, 1, 1},
		{LowShelf, 2, 1},
		{LowShelf, 3, 2},
		{HighShelf, 4, 2},
		{TiltShelf, 6, 3},
		{Peak, 2, 1},
		{Peak, 8, 4},
		{BandPass, 4, 2},
		{Notch, 6, 3},
	}

	var out [MaxSections]biquad.Coefficients

	for _, tt := range tests {
		got := Cascade(tt.typ, tt.order, 1000, sampleRate, 3, 0.707, &out)
		if got != tt.want {
			t.Errorf("%v order %d: got %d sections, want %d", tt.typ, tt.order, got, tt.want)
		}

		if got < 1 || got > MaxSections {
			t.Errorf("%v order %d: section count %d out of range", tt.typ, tt.order, got)
		}
	}
}

func TestCascade_OrderClamped(t *testing.T) {
	var out [MaxSections]biquad.Coefficients

	for _, typ := range []FilterType{LowPass, HighPass, LowShelf, HighShelf, TiltShelf, Peak, BandPass, Notch} {
		n := Cascade(typ, 1000, 1000, sampleRate, 3, 0.707, &out)
		if n > MaxSections {
			t.Errorf("%v: oversized order produced %d sections", typ, n)
		}

		n = Cascade(typ, -5, 1000, sampleRate, 3, 0.707, &out)
		if n < 1 {
			t.Errorf("%v: undersized order produced %d sections", typ, n)
		}
	}
}

func TestCascade_ShelfGainSplit(t *testing.T) {
	const gainDB = 9.0

	var out [MaxSections]biquad.Coefficients

	// Order 6 low shelf: three sections, 3 dB each, 9 dB total at DC.
	n := Cascade(LowShelf, 6, 1000, sampleRate, gainDB, 0.707, &out)
	if got := cascadeMagnitudeDB(out[:n], 0); !almostEqual(got, gainDB, 1e-9) {
		t.Errorf("DC: got %v dB, want %v", got, gainDB)
	}

	if got := cascadeMagnitudeDB(out[:n], sampleRate/2); !almostEqual(got, 0, 1e-9) {
		t.Errorf("Nyquist: got %v dB, want 0", got)
	}
}

func TestCascade_PeakZeroGainIdentity(t *testing.T) {
	var out [MaxSections]biquad.Coefficients

	for _, order := range []int{2, 4, 8} {
		n := Cascade(Peak, order, 1000, sampleRate, 0, 0.707, &out)
		for i := 0; i < n; i++ {
			if out[i] != biquad.Identity() {
				t.Errorf("order %d section %d: got %+v, want identity", order, i, out[i])
			}
		}
	}
}

func TestCascade_ButterworthFlatness(t *testing.T) {
	// A 4th-order Butterworth lowpass should be ~-3 dB at cutoff and
	// flat (0 dB) well inside the passband.
	var out [MaxSections]biquad.Coefficients

	n := Cascade(LowPass, 4, 1000, sampleRate, 0, 0.707, &out)

	if got := cascadeMagnitudeDB(out[:n], 1000); !almostEqual(got, -3.0103, 1e-2) {
		t.Errorf("cutoff: got %v dB, want ~-3", got)
	}

	if got := cascadeMagnitudeDB(out[:n], 50); !almostEqual(got, 0, 1e-3) {
		t.Errorf("passband: got %v dB, want ~0", got)
	}
}

func TestDesign_DegenerateInputsYieldIdentity(t *testing.T) {
	id := biquad.Identity()

	cases := []biquad.Coefficients{
		Lowpass(-10, 0.707, sampleRate),
		Highpass(1000, 0.707, 0),
		PeakEQ(math.NaN(), 3, 0.707, sampleRate),
		Bandpass(sampleRate, 0.707, sampleRate),
		FirstOrderLowShelf(0, 6, sampleRate),
	}

	for i, c := range cases {
		if c != id {
			t.Errorf("case %d: got %+v, want identity", i, c)
		}
	}
}

func TestCascade_NotchSectionsMatchNotchEQ(t *testing.T) {
	var out [MaxSections]biquad.Coefficients

	n := Cascade(Notch, 4, 1000, sampleRate, 0, 2, &out)
	want := NotchEQ(1000, 2, sampleRate)

	for i := 0; i < n; i++ {
		if out[i] != want {
			t.Errorf("section %d: got %+v, want %+v", i, out[i], want)
		}
	}
}

func TestFilterType_String(t *testing.T) {
	if LowPass.String() != "lowpass" || TiltShelf.String() != "tiltshelf" {
		t.Fatal("unexpected FilterType names")
	}

	if FilterType(99).String() != "unknown" {
		t.Fatal("out-of-range FilterType should be unknown")
	}
}
