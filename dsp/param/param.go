package param

import (
	"math"
	"sync/atomic"
)

// Flag is a dirty flag shared between a control writer and an audio
// reader. The zero value is clean.
type Flag struct {
	v atomic.Bool
}

// Mark sets the flag. Wait-free; safe from any goroutine.
func (f *Flag) Mark() {
	f.v.Store(true)
}

// Consume atomically clears the flag and reports whether it was set.
// The caller that observes true performs the pending recomputation
// exactly once.
func (f *Flag) Consume() bool {
	return f.v.Swap(false)
}

// Peek reports whether the flag is set without clearing it.
func (f *Flag) Peek() bool {
	return f.v.Load()
}

// Float is a lock-free float64 slot. The zero value holds 0.
type Float struct {
	bits atomic.Uint64
}

// Store writes v. Wait-free.
func (p *Float) Store(v float64) {
	p.bits.Store(math.Float64bits(v))
}

// Load reads the most recently stored value.
func (p *Float) Load() float64 {
	return math.Float64frombits(p.bits.Load())
}

// StoreIfChanged writes v and reports whether it differs from the
// previous value by more than eps. Callers use the result to skip
// marking the dirty flag on jittery but insignificant writes.
func (p *Float) StoreIfChanged(v, eps float64) bool {
	if math.Abs(v-p.Load()) <= eps {
		return false
	}

	p.bits.Store(math.Float64bits(v))

	return true
}

// Int is a lock-free integer slot. The zero value holds 0.
type Int struct {
	v atomic.Int64
}

// Store writes v. Wait-free.
func (p *Int) Store(v int) {
	p.v.Store(int64(v))
}

// Load reads the most recently stored value.
func (p *Int) Load() int {
	return int(p.v.Load())
}
