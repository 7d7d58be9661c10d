// Package peak estimates starting values for symmetric-peak shapes from
// raw (y, x) samples, without fitting anything.
//
// 🚀 What is peak?
//
//	Every peaked lineshape (gaussian, lorentzian, voigt, …) needs the same
//	three starting values before an optimizer can run:
//	  • Amplitude — how tall the peak is
//	  • Center    — where it sits on the x axis
//	  • Sigma     — how wide it is
//	This package derives all three from the data itself, so a caller never
//	has to eyeball them.
//
// ✨ Key features:
//   - Estimate: one pass over the samples, no allocation beyond the result
//   - half-max refinement: width from the span between the first and last
//     sample crossing the half-maximum level (order-sensitive on purpose)
//   - negative-peak support (dips instead of bumps)
//   - IndexOf: nearest-index lookup, reusable by any shape heuristic
//
// ⚙️ Usage:
//
//	g := peak.Estimate(y, x, false)
//	// g.Amplitude, g.Center, g.Sigma feed the shape's parameter store
//
// Determinism:
//
//	Pure functions over the input slices; no randomness, no global state.
//	The half-max refinement depends on the order samples are given in —
//	it looks at first/last qualifying indices, not sorted extrema.
//
// Performance:
//
//   - Time:   O(n) per call
//   - Memory: O(1)
//
// See examples in example_test.go.
package peak
