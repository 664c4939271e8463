package knee

import (
	"math"

	"github.com/cwbudde/algo-response/dsp/core"
	"github.com/cwbudde/algo-response/dsp/param"
)

const (
	minRatio     = 1.0
	minKneeWidth = 0.01
)

// Computer maps input level to output level (both dB) through a smooth
// knee. Setters are lock-free and may run concurrently with evaluation;
// Update applies pending parameter changes on the audio goroutine.
type Computer struct {
	threshold param.Float
	ratio     param.Float
	kneeWidth param.Float
	curve     param.Float
	dirty     param.Flag

	// Derived curve state, owned by the audio goroutine.
	lowTh, highTh float64
	mid, high     quad

	linear linearCurve
	down   downCurve
	up     upCurve
}

// New returns a Computer with threshold -18 dB, ratio 2, knee width
// 0.25 dB and a neutral curve shape, marked for interpolation.
func New() *Computer {
	c := &Computer{}

	c.threshold.Store(-18)
	c.ratio.Store(2)
	c.kneeWidth.Store(0.25)
	c.dirty.Mark()

	return c
}

// SetThreshold stores the threshold in dB.
func (c *Computer) SetThreshold(v float64) {
	c.threshold.Store(v)
	c.dirty.Mark()
}

// Threshold returns the threshold in dB.
func (c *Computer) Threshold() float64 { return c.threshold.Load() }

// SetRatio stores the compression ratio, clamped to >= 1.
func (c *Computer) SetRatio(v float64) {
	c.ratio.Store(math.Max(minRatio, v))
	c.dirty.Mark()
}

// Ratio returns the compression ratio.
func (c *Computer) Ratio() float64 { return c.ratio.Load() }

// SetKneeWidth stores the knee width in dB, clamped to >= 0.01.
func (c *Computer) SetKneeWidth(v float64) {
	c.kneeWidth.Store(math.Max(v, minKneeWidth))
	c.dirty.Mark()
}

// KneeWidth returns the knee width in dB.
func (c *Computer) KneeWidth() float64 { return c.kneeWidth.Load() }

// SetCurve stores the curve shape, clamped to [-1, 1]. Positive values
// blend toward the concave-down archetype, negative toward the
// convex-up archetype; zero is the pure constant-ratio line.
func (c *Computer) SetCurve(v float64) {
	c.curve.Store(core.Clamp(v, -1, 1))
	c.dirty.Mark()
}

// Curve returns the curve shape.
func (c *Computer) Curve() float64 { return c.curve.Load() }

// Update re-interpolates the curve coefficients if a parameter changed
// since the last call and reports whether it did. Allocation-free;
// intended to be called once per block or per sample by the audio
// goroutine.
func (c *Computer) Update() bool {
	if !c.dirty.Consume() {
		return false
	}

	c.interpolate()

	return true
}

// Eval returns the output level for input level x (both dB): identity
// below the knee, the knee quadratic inside it, and the shaped region
// quadratic at or above the upper boundary. In the upper region x is
// clamped to <= 0 so the polynomial is never extrapolated past 0 dBFS.
func (c *Computer) Eval(x float64) float64 {
	switch {
	case x <= c.lowTh:
		return x
	case x >= c.highTh:
		return c.high.eval(math.Min(x, 0))
	default:
		return c.mid.eval(x)
	}
}

// Process returns the gain adjustment Eval(x) - x in dB to apply at
// input level x; negative values are gain reduction.
func (c *Computer) Process(x float64) float64 {
	return c.Eval(x) - x
}

// CopyFrom snapshots another computer's interpolated curve state (knee
// boundaries and both quadratics), not its raw parameters. It lets a
// secondary detector reuse a primary's curve without re-deriving it.
func (c *Computer) CopyFrom(other *Computer) {
	c.lowTh = other.lowTh
	c.highTh = other.highTh
	c.mid = other.mid
	c.high = other.high
}

// interpolate reads each parameter slot once and rebuilds the curve
// coefficients.
//
// The knee-region parabola is the unique one meeting the identity line
// at lowTh and the 1/ratio slope at highTh with matching value and
// slope at both ends; it does not depend on the curve shape. The upper
// region blends the constant-ratio line with one archetype, weighted by
// the shape parameter, component-wise in (a, b, c).
func (c *Computer) interpolate() {
	threshold := c.threshold.Load()
	kneeWidth := c.kneeWidth.Load()
	ratio := c.ratio.Load()
	shape := c.curve.Load()

	c.lowTh = threshold - kneeWidth
	c.highTh = threshold + kneeWidth

	a0 := (1/ratio - 1) / (kneeWidth * 4)
	a1 := -c.lowTh
	c.mid.a = a0
	c.mid.b = 2*a0*a1 + 1
	c.mid.c = a0 * a1 * a1

	c.linear.derive(threshold, ratio, kneeWidth)

	if shape >= 0 {
		alpha, beta := 1-shape, shape
		c.down.derive(threshold, ratio, kneeWidth)
		c.high.a = beta * c.down.a
		c.high.b = alpha * c.linear.b
		c.high.c = alpha*c.linear.c + beta*c.down.c
	} else {
		alpha, beta := 1+shape, -shape
		c.up.derive(threshold, ratio, kneeWidth)
		c.high.a = beta * c.up.a
		c.high.b = alpha*c.linear.b + beta
		c.high.c = alpha*c.linear.c + beta*c.up.c
	}
}
