package models

import (
	"fmt"

	"github.com/katalvlaran/lvlfit/params"
)

// MaxDegree is the highest supported polynomial degree.
const MaxDegree = 7

// NewPolynomial builds a polynomial model of the given degree,
//
//	x → c0 + c1·x + … + c_deg·x^deg
//
// with one coefficient parameter per term, c0..c_deg. The degree is
// fixed at construction; coefficients beyond it are never exposed as
// parameters and never contribute to evaluation — the formula closes
// over an ordered coefficient list sized exactly to the degree.
//
// Guess: degree-matched least-squares regression of data against x,
// coefficients assigned in ascending c0..c_deg order; without x, or
// when the fit is singular, every coefficient stays 0.
//
// Errors:
//   - ErrInvalidDegree — deg outside the closed range [0, 7].
func NewPolynomial(deg int, store *params.Store, opts Options) (*Model, error) {
	if deg < 0 || deg > MaxDegree {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDegree, deg)
	}

	names := make([]string, deg+1)
	for i := range names {
		names[i] = fmt.Sprintf("c%d", i)
	}

	shape := Shape{
		Name:       "polynomial",
		ParamNames: names,
		fn: func(x float64, p []float64) float64 {
			// Horner over exactly deg+1 coefficients.
			out := 0.0
			for i := len(p) - 1; i >= 0; i-- {
				out = out*x + p[i]
			}

			return out
		},
		guess: func(data, x []float64, _ bool) map[string]float64 {
			vals := make(map[string]float64, len(names))
			for _, n := range names {
				vals[n] = 0
			}
			if x != nil {
				if cs, err := polyfit(x, data, deg); err == nil {
					for i, c := range cs {
						vals[names[i]] = c
					}
				}
			}

			return vals
		},
	}

	return newModel(shape, store, opts)
}
