package design

// MaxSections is the compile-time capacity of a coefficient cascade.
// Cascade never writes more than this many sections.
const MaxSections = 8

// MaxOrder is the highest accepted filter order (two per section).
const MaxOrder = 2 * MaxSections

// FilterType selects the closed-form design family.
type FilterType int

const (
	LowPass FilterType = iota
	HighPass
	LowShelf
	HighShelf
	TiltShelf
	Peak
	BandPass
	Notch
)

// String returns the conventional name of the filter type.
func (t FilterType) String() string {
	switch t {
	case LowPass:
		return "lowpass"
	case HighPass:
		return "highpass"
	case LowShelf:
		return "lowshelf"
	case HighShelf:
		return "highshelf"
	case TiltShelf:
		return "tiltshelf"
	case Peak:
		return "peak"
	case BandPass:
		return "bandpass"
	case Notch:
		return "notch"
	default:
		return "unknown"
	}
}
