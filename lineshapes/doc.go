// Package lineshapes provides the pure, stateless closed-form formulas
// the model catalog fits against: peaks, baselines, and decays.
//
// 🚀 What is lineshapes?
//
//	Plain float64 → float64 shape functions, one per supported model:
//		• Gaussian, Lorentzian, Voigt — symmetric peaks
//		• Exponential — decay
//		• PowerLaw — scaling law
//		• Linear, Parabolic, Constant — baselines
//
// ✨ Key properties:
//   - pure and stateless: no configuration, no globals, no allocation
//   - Voigt evaluates the Faddeeva function with Humlicek's w4 rational
//     approximations (relative error ≈ 1e-4, ample for lineshapes)
//   - a tiny positive floor on width parameters guards division by zero
//
// Conventions:
//
//	Peak shapes are area-normalized: the amplitude parameter is the
//	integrated area, not the height. Gaussian height at the center is
//	amplitude/(sigma·√2π); Lorentzian height is amplitude/(π·sigma).
//	The Voigt gamma parameter is tied to sigma.
//
// See examples in example_test.go.
package lineshapes
