// Package models: options, shape descriptors, and sentinel errors.
package models

import "errors"

// Sentinel errors for model construction and guessing.
var (
	// ErrDimensionality is returned when the supplied independent-variable
	// name list does not have exactly one entry.
	ErrDimensionality = errors.New("models: exactly one independent variable is required")

	// ErrInvalidDegree is returned when a polynomial degree lies outside
	// the supported closed range [0, 7].
	ErrInvalidDegree = errors.New("models: polynomial degree must be an integer in [0, 7]")

	// ErrUnknownMissing is returned for an unrecognized missing-data mode.
	ErrUnknownMissing = errors.New("models: unrecognized missing-data mode")

	// ErrNilStore is returned when a nil parameter store is supplied.
	ErrNilStore = errors.New("models: parameter store is nil")

	// ErrEmptyData is returned when Guess is called without observations
	// (or when MissingDrop removes all of them).
	ErrEmptyData = errors.New("models: data must be non-empty")

	// ErrLengthMismatch is returned when x and data lengths differ.
	ErrLengthMismatch = errors.New("models: x and data lengths differ")

	// ErrMissingValues is returned by MissingRaise when the observations
	// contain NaN entries.
	ErrMissingValues = errors.New("models: data contains missing (NaN) observations")
)

// Missing selects how NaN observations are treated before a guess.
// The mode is validated at model construction; an out-of-range value is
// rejected with ErrUnknownMissing.
type Missing int

const (
	// MissingNone performs no checking; NaN values flow into the guess.
	MissingNone Missing = iota

	// MissingDrop removes NaN observations (and their x counterparts)
	// before guessing.
	MissingDrop

	// MissingRaise fails the guess with ErrMissingValues when any
	// observation is NaN.
	MissingRaise
)

// String implements fmt.Stringer for diagnostics.
func (m Missing) String() string {
	switch m {
	case MissingNone:
		return "none"
	case MissingDrop:
		return "drop"
	case MissingRaise:
		return "raise"
	default:
		return "unknown"
	}
}

// Options configures a Model at construction.
//
// Example:
//
//	opts := models.DefaultOptions()
//	opts.Prefix = "bg_"
//	m, err := models.NewLinear(store, opts)
type Options struct {
	// Prefix namespaces every parameter name ("" by default). Two models
	// attached to the same store must use distinct (Prefix, Suffix)
	// pairs, or their names collide in the store.
	Prefix string

	// Suffix is appended after the base name ("" = none), for
	// disambiguating two models that share parameter names.
	Suffix string

	// IndependentVars names the independent variables. Exactly one is
	// supported; nil means the default ["x"]. Any other length fails
	// with ErrDimensionality.
	IndependentVars []string

	// Missing selects the NaN-observation policy applied before a guess.
	Missing Missing
}

// DefaultOptions returns Options with sane defaults: no prefix, no
// suffix, independent variable "x", MissingNone.
func DefaultOptions() Options {
	return Options{IndependentVars: []string{"x"}}
}

// GuessOptions carries shape-specific guess flags. A nil *GuessOptions
// is valid and means all defaults.
type GuessOptions struct {
	// Negative marks the peak as a dip: the peak estimator follows the
	// minimum instead of the maximum and flips the amplitude sign.
	// Ignored by non-peak shapes.
	Negative bool
}

// ShapeFunc evaluates a shape formula at one x, with p holding the
// primary parameter values in the shape's base-name order.
type ShapeFunc func(x float64, p []float64) float64

// guessFunc computes starting values for every primary parameter of a
// shape from the observed data. x may be nil. The returned map is keyed
// by parameter base-name and covers all of them.
type guessFunc func(data, x []float64, negative bool) map[string]float64

// DerivedSpec declares a shape's derived parameter: a fixed multiple of
// one primary parameter, registered as a structured expression at model
// construction and recomputed on every read.
type DerivedSpec struct {
	// Name is the derived parameter's base-name (e.g. "fwhm").
	Name string

	// Of is the primary base-name the expression references.
	Of string

	// Factor is the dimensionless shape-specific constant.
	Factor float64
}

// Shape is an immutable catalog entry: a formula identity, the ordered
// primary parameter base-names, and an optional derived-parameter
// definition. Created once per model type, never mutated.
type Shape struct {
	// Name identifies the shape ("gaussian", "polynomial", ...).
	Name string

	// ParamNames lists the primary parameter base-names in the order the
	// formula consumes them. Treat as read-only.
	ParamNames []string

	// Derived is the shape's derived-parameter definition, nil if none.
	Derived *DerivedSpec

	fn    ShapeFunc
	guess guessFunc
}
