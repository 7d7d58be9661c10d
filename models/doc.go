// Package models is the catalog of named fitting shapes and the
// heuristics that produce usable starting values for their parameters
// before an optimizer runs.
//
// 🚀 What is models?
//
//	Each catalog entry bundles a shape formula, its ordered parameter
//	base-names, a guess procedure, and (for peak shapes) a derived
//	full-width-half-max constraint:
//		• NewConstant, NewLinear, NewQuadratic (NewParabolic), NewPolynomial
//		• NewGaussian, NewLorentzian, NewVoigt
//		• NewPowerLaw, NewExponential
//	A Model binds one entry to a prefix/suffix namespace and an
//	externally owned params.Store, registers its parameter names there,
//	and — once data is available — writes starting values back through
//	Guess.
//
// ✨ Key features:
//   - prefix/suffix naming: compose several models on one store without
//     parameter-name collisions
//   - fwhm registered as a structured expression (factor × sigma), so it
//     tracks every sigma update and is never independently settable
//   - polynomial degrees 0–7 with the formula and the guess procedure
//     sized exactly to the validated degree
//   - regression-backed guesses (gonum) that degrade to documented
//     fallbacks instead of surfacing numeric failures — any guess is
//     only a starting point for the downstream optimizer
//   - missing-data policy: none, drop NaN observations, or raise
//
// ⚙️ Usage:
//
//	store := params.New()
//	opts := models.DefaultOptions()
//	opts.Prefix = "g1_"
//	m, err := models.NewGaussian(store, opts)
//	if err != nil { ... }
//	if err = m.Guess(y, x, nil); err != nil { ... }
//	// store now holds g1_amplitude, g1_center, g1_sigma, g1_fwhm
//
// Errors:
//
//	ErrDimensionality  - independent-variable list is not exactly one name.
//	ErrInvalidDegree   - polynomial degree outside [0, 7].
//	ErrUnknownMissing  - unrecognized missing-data mode.
//	ErrNilStore        - nil parameter store.
//	ErrEmptyData       - Guess called without observations.
//	ErrLengthMismatch  - x and data lengths differ.
//	ErrMissingValues   - MissingRaise found NaN observations.
//
// Concurrency:
//
//	Models are synchronous and share no state beyond their store. Guesses
//	into distinct stores are independent; same-store writers need
//	external synchronization.
//
// See examples in example_test.go.
package models
