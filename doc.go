// Package lvlfit is your toolbox for setting up nonlinear curve fits —
// named model shapes, composable parameter namespaces, and the heuristics
// that turn raw (x, y) samples into usable starting values before any
// optimizer runs.
//
// 🚀 What is lvlfit?
//
//	A small, deterministic library that brings together:
//		• A catalog of closed-form shapes: constant, linear, quadratic,
//		  polynomial (degree 0–7), gaussian, lorentzian, voigt,
//		  power-law, exponential
//		• One shared peak-estimation heuristic feeding every peaked shape
//		• Prefix/suffix parameter naming, so models compose without
//		  name collisions
//		• Derived-parameter constraints (fwhm as a fixed multiple of
//		  sigma) that stay consistent under every update
//		• An insertion-ordered parameter store with bounds and vary flags
//
// ✨ Why choose lvlfit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, documented fallbacks,
//     no panics on user input
//   - Deterministic – no global state, reproducible guesses
//   - A starting point, not a solver – plug the guessed parameters into
//     the optimizer of your choice
//
// Everything is organized under five subpackages:
//
//	peak/       — nearest-index lookup & (amplitude, center, width) peak guesses
//	params/     — named parameter store: values, bounds, vary flags, derived exprs
//	lineshapes/ — pure shape formulas (gaussian … voigt via Faddeeva w4)
//	models/     — the shape catalog, naming convention & guess procedures
//	examples/   — runnable end-to-end demos
//
// Quick sketch:
//
//	store := params.New()
//	m, _ := models.NewGaussian(store, models.DefaultOptions())
//	_ = m.Guess(y, x, nil)
//	sigma, _ := store.Value("sigma")
//	fwhm, _ := store.Value("fwhm") // always 2.354820 × sigma
//
// See each subpackage's doc.go and example_test.go for walkthroughs.
package lvlfit
