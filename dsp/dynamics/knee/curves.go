package knee

import "math"

// denominator floor for the down/up archetypes; keeps the leading
// coefficient finite when threshold+kneeWidth approaches zero.
const archetypeDenFloor = -0.0001

// quad is a quadratic gain curve y = a*x^2 + b*x + c over input level x.
type quad struct {
	a, b, c float64
}

func (p quad) eval(x float64) float64 {
	return (p.a*x+p.b)*x + p.c
}

func (p quad) slope(x float64) float64 {
	return 2*p.a*x + p.b
}

// linearCurve is the constant-ratio compressor line above the knee:
// y = threshold + (x - threshold)/ratio. Its quadratic term is zero.
type linearCurve struct {
	b, c float64
}

func (l *linearCurve) derive(threshold, ratio, _ float64) {
	l.b = 1 / ratio
	l.c = threshold * (1 - 1/ratio)
}

// downCurve is the concave archetype: reduction deepens faster toward
// 0 dBFS. Its linear term is zero.
type downCurve struct {
	a, c float64
}

func (d *downCurve) derive(threshold, ratio, kneeWidth float64) {
	den := math.Min(threshold+kneeWidth, archetypeDenFloor)
	d.a = 0.5 / (ratio * den)
	d.c = 0.5*(kneeWidth-threshold)/ratio + threshold
}

// upCurve is the convex archetype: reduction relaxes toward 0 dBFS.
// Its linear term is one.
type upCurve struct {
	a, c float64
}

func (u *upCurve) derive(threshold, ratio, kneeWidth float64) {
	den := math.Min(threshold+kneeWidth, archetypeDenFloor)
	u.a = 0.5 * (1 - ratio) / (ratio * den)
	u.c = 0.5 * (1 - ratio) * (kneeWidth - threshold) / ratio
}
