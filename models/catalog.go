// Package models - the catalog entries: one Shape per supported
// closed-form family, each bundling its formula, parameter base-names,
// guess procedure, and (for peaks) the derived fwhm constraint.
package models

import (
	"math"

	"github.com/katalvlaran/lvlfit/lineshapes"
	"github.com/katalvlaran/lvlfit/params"
	"github.com/katalvlaran/lvlfit/peak"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Full-width-half-max factors, one per peak shape. Each fwhm parameter
// is bound as factor × sigma and recomputed on every read.
const (
	// GaussianFWHMFactor = 2·√(2·ln 2).
	GaussianFWHMFactor = 2.354820

	// LorentzianFWHMFactor: the lorentzian half-width at half-maximum is
	// exactly sigma.
	LorentzianFWHMFactor = 2.0

	// VoigtFWHMFactor approximates the voigt full width for gamma=sigma.
	VoigtFWHMFactor = 3.60131
)

// Offsets guarding the log-domain regressions, and the fallback pad.
const (
	powerLawOffset    = 1e-14
	exponentialOffset = 1e-15
	fallbackPad       = 1e-9
)

// NewConstant builds the constant model x → c.
// Guess: c = mean of the data.
func NewConstant(store *params.Store, opts Options) (*Model, error) {
	return newModel(constantShape, store, opts)
}

// NewLinear builds the linear model x → slope·x + intercept.
// Guess: degree-1 regression of data against x; zeros without x.
func NewLinear(store *params.Store, opts Options) (*Model, error) {
	return newModel(linearShape, store, opts)
}

// NewQuadratic builds the quadratic model x → a·x² + b·x + c.
// Guess: degree-2 regression of data against x; zeros without x.
func NewQuadratic(store *params.Store, opts Options) (*Model, error) {
	return newModel(quadraticShape, store, opts)
}

// NewParabolic is an alias of NewQuadratic — same shape, second name.
var NewParabolic = NewQuadratic

// NewGaussian builds the gaussian peak model with parameters amplitude,
// center, sigma, plus the derived fwhm = 2.354820 × sigma.
// Guess: peak.Estimate with GuessOptions.Negative.
func NewGaussian(store *params.Store, opts Options) (*Model, error) {
	return newModel(gaussianShape, store, opts)
}

// NewLorentzian builds the lorentzian peak model with parameters
// amplitude, center, sigma, plus the derived fwhm = 2.0 × sigma.
// Guess: peak.Estimate with GuessOptions.Negative.
func NewLorentzian(store *params.Store, opts Options) (*Model, error) {
	return newModel(lorentzianShape, store, opts)
}

// NewVoigt builds the voigt peak model (gamma tied to sigma) with
// parameters amplitude, center, sigma, plus the derived fwhm =
// 3.60131 × sigma. Guess: peak.Estimate with GuessOptions.Negative.
func NewVoigt(store *params.Store, opts Options) (*Model, error) {
	return newModel(voigtShape, store, opts)
}

// NewPowerLaw builds the power-law model x → amplitude·x^exponent.
// Guess: log–log degree-1 regression with offset-guarded operands;
// falls back to exponent=1, amplitude=|max(data)|+1e-9 when the log
// domain or the regression degenerates.
func NewPowerLaw(store *params.Store, opts Options) (*Model, error) {
	return newModel(powerLawShape, store, opts)
}

// NewExponential builds the decay model x → amplitude·exp(−x/decay).
// Guess: regression of x against log(|data|+1e-15), decay = −1/slope,
// amplitude = exp(intercept); a degenerate or zero-slope fit falls back
// to slope=1 with the power-law fallback amplitude.
func NewExponential(store *params.Store, opts Options) (*Model, error) {
	return newModel(exponentialShape, store, opts)
}

var constantShape = Shape{
	Name:       "constant",
	ParamNames: []string{"c"},
	fn: func(x float64, p []float64) float64 {
		return lineshapes.Constant(x, p[0])
	},
	guess: func(data, _ []float64, _ bool) map[string]float64 {
		return map[string]float64{"c": stat.Mean(data, nil)}
	},
}

var linearShape = Shape{
	Name:       "linear",
	ParamNames: []string{"slope", "intercept"},
	fn: func(x float64, p []float64) float64 {
		return lineshapes.Linear(x, p[0], p[1])
	},
	guess: func(data, x []float64, _ bool) map[string]float64 {
		slope, intercept := 0.0, 0.0
		if x != nil {
			if a, b, ok := linearFit(x, data); ok {
				intercept, slope = a, b
			}
		}

		return map[string]float64{"slope": slope, "intercept": intercept}
	},
}

var quadraticShape = Shape{
	Name:       "quadratic",
	ParamNames: []string{"a", "b", "c"},
	fn: func(x float64, p []float64) float64 {
		return lineshapes.Parabolic(x, p[0], p[1], p[2])
	},
	guess: func(data, x []float64, _ bool) map[string]float64 {
		vals := map[string]float64{"a": 0, "b": 0, "c": 0}
		if x != nil {
			if cs, err := polyfit(x, data, 2); err == nil {
				vals["c"], vals["b"], vals["a"] = cs[0], cs[1], cs[2]
			}
		}

		return vals
	},
}

var gaussianShape = Shape{
	Name:       "gaussian",
	ParamNames: []string{"amplitude", "center", "sigma"},
	Derived:    &DerivedSpec{Name: "fwhm", Of: "sigma", Factor: GaussianFWHMFactor},
	fn: func(x float64, p []float64) float64 {
		return lineshapes.Gaussian(x, p[0], p[1], p[2])
	},
	guess: guessPeak,
}

var lorentzianShape = Shape{
	Name:       "lorentzian",
	ParamNames: []string{"amplitude", "center", "sigma"},
	Derived:    &DerivedSpec{Name: "fwhm", Of: "sigma", Factor: LorentzianFWHMFactor},
	fn: func(x float64, p []float64) float64 {
		return lineshapes.Lorentzian(x, p[0], p[1], p[2])
	},
	guess: guessPeak,
}

var voigtShape = Shape{
	Name:       "voigt",
	ParamNames: []string{"amplitude", "center", "sigma"},
	Derived:    &DerivedSpec{Name: "fwhm", Of: "sigma", Factor: VoigtFWHMFactor},
	fn: func(x float64, p []float64) float64 {
		return lineshapes.Voigt(x, p[0], p[1], p[2])
	},
	guess: guessPeak,
}

var powerLawShape = Shape{
	Name:       "powerlaw",
	ParamNames: []string{"amplitude", "exponent"},
	fn: func(x float64, p []float64) float64 {
		return lineshapes.PowerLaw(x, p[0], p[1])
	},
	guess: guessPowerLaw,
}

var exponentialShape = Shape{
	Name:       "exponential",
	ParamNames: []string{"amplitude", "decay"},
	fn: func(x float64, p []float64) float64 {
		return lineshapes.Exponential(x, p[0], p[1])
	},
	guess: guessExponential,
}

// guessPeak feeds every symmetric-peak shape from the shared estimator.
// The derived fwhm is never guessed here: it tracks sigma by expression.
func guessPeak(data, x []float64, negative bool) map[string]float64 {
	g := peak.Estimate(data, x, negative)

	return map[string]float64{
		"amplitude": g.Amplitude,
		"center":    g.Center,
		"sigma":     g.Sigma,
	}
}

// guessPowerLaw fits log(data+1e-14) against log(x+1e-14). The log
// domain is checked explicitly — any offset-guarded operand at or below
// zero, or a degenerate regression, selects the fallback instead of a
// blanket recover.
func guessPowerLaw(data, x []float64, _ bool) map[string]float64 {
	if x != nil && logDomainOK(x, powerLawOffset) && logDomainOK(data, powerLawOffset) {
		lx := make([]float64, len(x))
		ly := make([]float64, len(data))
		for i := range x {
			lx[i] = math.Log(x[i] + powerLawOffset)
			ly[i] = math.Log(data[i] + powerLawOffset)
		}
		if intercept, slope, ok := linearFit(lx, ly); ok {
			return map[string]float64{"amplitude": math.Exp(intercept), "exponent": slope}
		}
	}

	return map[string]float64{"amplitude": fallbackAmplitude(data), "exponent": 1}
}

// guessExponential fits x against log(|data|+1e-15); decay = −1/slope,
// amplitude = exp(intercept). A zero slope would put the decay at ∞, so
// it falls back together with degenerate fits (fallback slope 1 —
// decay −1 — with the shared fallback amplitude).
func guessExponential(data, x []float64, _ bool) map[string]float64 {
	if x != nil {
		ly := make([]float64, len(data))
		for i, v := range data {
			ly[i] = math.Log(math.Abs(v) + exponentialOffset)
		}
		if intercept, slope, ok := linearFit(x, ly); ok && slope != 0 {
			return map[string]float64{"amplitude": math.Exp(intercept), "decay": -1 / slope}
		}
	}

	return map[string]float64{"amplitude": fallbackAmplitude(data), "decay": -1}
}

// logDomainOK reports whether every offset-guarded value is a valid
// logarithm operand.
func logDomainOK(vals []float64, offset float64) bool {
	for _, v := range vals {
		if !(v+offset > 0) { // rejects NaN too
			return false
		}
	}

	return true
}

// fallbackAmplitude is the documented regression-failure amplitude:
// exp(log(|max(data)| + 1e-9)). data is non-empty (Guess validates).
func fallbackAmplitude(data []float64) float64 {
	return math.Exp(math.Log(math.Abs(floats.Max(data)) + fallbackPad))
}
