// Package param provides lock-free parameter slots for sharing control
// values between a control thread and a real-time audio thread.
//
// A control thread stores new values into independent [Float] or [Int]
// slots at any rate and marks a shared [Flag]. The audio thread calls
// [Flag.Consume] once per processing block; when it returns true the
// audio thread reads each slot exactly once and rebuilds its derived
// state. A store that races with an in-progress rebuild re-marks the
// flag, so the new value is picked up on the next block instead of
// tearing the current one.
//
// The protocol assumes a single control-side writer and a single
// audio-side reader per engine instance. Multiple concurrent writers
// require external serialization.
package param
