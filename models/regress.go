// Package models - regression kernels backing the guess procedures.
//
// These helpers never surface numeric failure to a caller: every guess
// procedure checks the ok/error result and substitutes its documented
// fallback, so a singular or log-degenerate fit degrades the guess
// instead of aborting it.
package models

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// errSingularFit marks an unusable least-squares solution. Internal:
// recovered by the guess procedures, never returned to callers.
var errSingularFit = errors.New("models: singular least-squares fit")

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// linearFit returns the ordinary least-squares line y ≈ intercept +
// slope·x. ok is false for degenerate inputs (fewer than two samples,
// zero x variance, non-finite result).
func linearFit(x, y []float64) (intercept, slope float64, ok bool) {
	if len(x) < 2 || len(x) != len(y) {
		return 0, 0, false
	}
	intercept, slope = stat.LinearRegression(x, y, nil, false)
	if !isFinite(intercept) || !isFinite(slope) {
		return 0, 0, false
	}

	return intercept, slope, true
}

// polyfit returns the ascending least-squares coefficients c0..c_deg of
// y ≈ Σ c_k·x^k, solved by QR on the Vandermonde matrix.
func polyfit(x, y []float64, deg int) ([]float64, error) {
	n := len(x)
	if n < deg+1 || n != len(y) {
		return nil, errSingularFit
	}

	a := mat.NewDense(n, deg+1, nil)
	for i, xi := range x {
		v := 1.0
		for j := 0; j <= deg; j++ {
			a.Set(i, j, v)
			v *= xi
		}
	}
	b := mat.NewDense(n, 1, nil)
	for i, yi := range y {
		b.Set(i, 0, yi)
	}

	var qr mat.QR
	qr.Factorize(a)
	var c mat.Dense
	if err := qr.SolveTo(&c, false, b); err != nil {
		return nil, errSingularFit
	}

	out := make([]float64, deg+1)
	for j := range out {
		out[j] = c.At(j, 0)
		if !isFinite(out[j]) {
			return nil, errSingularFit
		}
	}

	return out, nil
}
