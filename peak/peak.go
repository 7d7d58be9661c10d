package peak

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyInput indicates the input sequence is empty.
var ErrEmptyInput = errors.New("peak: input sequence must be non-empty")

// Fallback guess used when no independent-variable data is supplied.
// The model stays constructible without data; no shape-aware estimate
// is attempted.
const (
	// NeutralAmplitude is the amplitude returned without x data.
	NeutralAmplitude = 1.0
	// NeutralCenter is the center returned without x data.
	NeutralCenter = 0.0
	// NeutralSigma is the width returned without x data.
	NeutralSigma = 1.0
)

// widthDivisor scales the x span into the default width estimate.
const widthDivisor = 6.0

// Guess is the (amplitude, center, width) triple produced by Estimate.
// It is transient: callers write it into a parameter store and drop it.
type Guess struct {
	// Amplitude is ±1.5 × (maxy − miny); sign follows the negative flag.
	Amplitude float64

	// Center is the x value under the selected extremum of y.
	Center float64

	// Sigma is the width estimate: (maxx − minx)/6 by default, refined
	// to half the x span between the first and last half-max crossing
	// when more than two samples qualify.
	Sigma float64
}

// IndexOf returns the index of the element of arr closest to val.
//
// One asymmetry by contract: if val is strictly smaller than every
// element, the result is index 0 regardless of numeric distance — a
// half-max crossing search must not land on a spurious "nearest" index
// to the left of the data. On equal distances the first wins.
//
// Returns ErrEmptyInput when arr is empty. O(n), pure.
func IndexOf(arr []float64, val float64) (int, error) {
	if len(arr) == 0 {
		return 0, ErrEmptyInput
	}
	if val < floats.Min(arr) {
		return 0, nil
	}

	best, bestDist := 0, math.Abs(arr[0]-val)
	for i := 1; i < len(arr); i++ {
		if d := math.Abs(arr[i] - val); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best, nil
}

// Estimate produces a usable (amplitude, center, width) starting guess
// for any symmetric-peak shape from raw (y, x) samples.
//
// Algorithm:
//  1. Without x data (nil, empty, or length ≠ len(y)) return the neutral
//     guess (1, 0, 1).
//  2. Take the global extrema maxy/miny and maxx/minx.
//  3. Center: the x value at the index of the extremum selected by the
//     negative flag (minimum of y when negative, else maximum).
//  4. Amplitude: ±1.5 × (maxy − miny), sign following negative.
//  5. Width: (maxx − minx)/6 by default; if more than two samples lie
//     beyond the midpoint (maxy+miny)/2 — above it for a positive peak,
//     below for a negative one — use half the x span between the first
//     and last such sample instead.
//
// A flat signal (maxy == miny) yields zero amplitude and the default
// width; callers must not divide by that amplitude downstream. Fewer
// than three qualifying samples never trigger the refinement.
func Estimate(y, x []float64, negative bool) Guess {
	if len(x) == 0 || len(x) != len(y) {
		return Guess{Amplitude: NeutralAmplitude, Center: NeutralCenter, Sigma: NeutralSigma}
	}

	maxy, miny := floats.Max(y), floats.Min(y)
	maxx, minx := floats.Max(x), floats.Min(x)

	extremum := maxy
	if negative {
		extremum = miny
	}
	iext, _ := IndexOf(y, extremum) // len(y) > 0, cannot fail

	amp := 1.5 * (maxy - miny)
	if negative {
		amp = -amp
	}

	sig := (maxx - minx) / widthDivisor

	// Half-max refinement: span between the first and last sample beyond
	// the midpoint, in the order the samples were given.
	mid := (maxy + miny) / 2.0
	first, last, count := -1, -1, 0
	for i, v := range y {
		beyond := v > mid
		if negative {
			beyond = v < mid
		}
		if beyond {
			if first < 0 {
				first = i
			}
			last = i
			count++
		}
	}
	if count > 2 {
		sig = (x[last] - x[first]) / 2.0
	}

	return Guess{Amplitude: amp, Center: x[iext], Sigma: sig}
}
