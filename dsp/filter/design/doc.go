// Package design provides closed-form biquad coefficient design and
// cascade composition for the supported filter types.
//
// Single-section designs follow the RBJ cookbook formulas; first-order
// sections use bilinear-transformed analog prototypes. [Cascade]
// composes a full filter of a given [FilterType] and order into at most
// [MaxSections] second-order sections, splitting gain evenly across
// sections for the gain-bearing types so that a zero-gain filter is an
// exact identity.
//
// Invalid parameters (non-positive sample rate, frequency outside
// (0, Nyquist)) never fail; they degrade to identity sections.
package design
