package models

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlfit/params"
)

// Model binds a catalog Shape to a runtime-chosen prefix/suffix
// namespace and an externally owned parameter store.
//
// Construction registers every composed primary parameter name in the
// store (at value 0) and, for shapes with a derived parameter, binds the
// derived name to its factor × primary expression. The Model owns no
// data beyond its naming configuration; discard it when done.
//
// A Model has two states: unguessed → guessed. A successful Guess call
// performs the one-way transition; repeat guesses overwrite the starting
// values and re-assert the guessed state.
type Model struct {
	shape   Shape
	prefix  string
	suffix  string
	missing Missing
	store   *params.Store
	guessed bool
}

// newModel validates opts, registers the shape's parameters, and wires
// the derived constraint. Shared by every catalog constructor.
func newModel(shape Shape, store *params.Store, opts Options) (*Model, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	// nil means "unspecified", which defaults to the single variable "x".
	// Anything explicitly supplied must name exactly one variable.
	if opts.IndependentVars != nil && len(opts.IndependentVars) != 1 {
		return nil, fmt.Errorf("%w: got %d independent variables", ErrDimensionality, len(opts.IndependentVars))
	}
	if opts.Missing < MissingNone || opts.Missing > MissingRaise {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMissing, int(opts.Missing))
	}

	m := &Model{
		shape:   shape,
		prefix:  opts.Prefix,
		suffix:  opts.Suffix,
		missing: opts.Missing,
		store:   store,
	}

	for _, base := range shape.ParamNames {
		if err := store.Add(m.paramName(base), 0); err != nil {
			return nil, fmt.Errorf("models: register %q: %w", m.paramName(base), err)
		}
	}
	if d := shape.Derived; d != nil {
		expr := params.Expr{
			Op:       params.OpScale,
			Operands: []string{m.paramName(d.Of)},
			Const:    d.Factor,
		}
		if err := store.AddDerived(m.paramName(d.Name), expr); err != nil {
			return nil, fmt.Errorf("models: bind %q: %w", m.paramName(d.Name), err)
		}
	}

	return m, nil
}

// paramName composes the externally visible name of base.
func (m *Model) paramName(base string) string {
	return ParamName(m.prefix, base, m.suffix)
}

// Shape returns the catalog entry this model was built from.
func (m *Model) Shape() Shape { return m.shape }

// Prefix returns the namespacing prefix.
func (m *Model) Prefix() string { return m.prefix }

// Suffix returns the disambiguation suffix ("" = none).
func (m *Model) Suffix() string { return m.suffix }

// HasInitialGuess reports whether a guess procedure has run.
func (m *Model) HasInitialGuess() bool { return m.guessed }

// ParamNames returns every composed parameter name this model exposes,
// primaries first (in formula order), then the derived name if any.
func (m *Model) ParamNames() []string {
	out := make([]string, 0, len(m.shape.ParamNames)+1)
	for _, base := range m.shape.ParamNames {
		out = append(out, m.paramName(base))
	}
	if m.shape.Derived != nil {
		out = append(out, m.paramName(m.shape.Derived.Name))
	}

	return out
}

// Guess computes starting values for every primary parameter from the
// observed data and writes them into the store, then flips the model to
// the guessed state. x is optional (nil); without it each shape falls
// back to its documented neutral values. Repeat calls overwrite.
//
// Numeric trouble inside a regression-backed guess never surfaces: the
// shape substitutes its documented fallback instead, trading guess
// quality for robustness — a guess is only a starting point.
//
// Errors:
//   - ErrEmptyData      — no observations (also after MissingDrop).
//   - ErrLengthMismatch — x supplied with a different length than data.
//   - ErrMissingValues  — MissingRaise found NaN observations.
func (m *Model) Guess(data, x []float64, opts *GuessOptions) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	if x != nil && len(x) != len(data) {
		return ErrLengthMismatch
	}

	data, x, err := applyMissing(m.missing, data, x)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return ErrEmptyData
	}

	negative := opts != nil && opts.Negative
	vals := m.shape.guess(data, x, negative)
	for _, base := range m.shape.ParamNames {
		if err = m.store.Set(m.paramName(base), vals[base]); err != nil {
			return fmt.Errorf("models: write %q: %w", m.paramName(base), err)
		}
	}
	m.guessed = true

	return nil
}

// Eval evaluates the shape at every x with the store's current
// parameter values.
func (m *Model) Eval(x []float64) ([]float64, error) {
	p := make([]float64, len(m.shape.ParamNames))
	for i, base := range m.shape.ParamNames {
		v, err := m.store.Value(m.paramName(base))
		if err != nil {
			return nil, fmt.Errorf("models: read %q: %w", m.paramName(base), err)
		}
		p[i] = v
	}

	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = m.shape.fn(xi, p)
	}

	return out, nil
}

// applyMissing enforces the NaN-observation policy. MissingDrop returns
// filtered copies; the inputs are never mutated.
func applyMissing(mode Missing, data, x []float64) ([]float64, []float64, error) {
	switch mode {
	case MissingNone:
		return data, x, nil

	case MissingRaise:
		for i, v := range data {
			if math.IsNaN(v) || (x != nil && math.IsNaN(x[i])) {
				return nil, nil, ErrMissingValues
			}
		}

		return data, x, nil

	case MissingDrop:
		outD := make([]float64, 0, len(data))
		var outX []float64
		if x != nil {
			outX = make([]float64, 0, len(x))
		}
		for i, v := range data {
			if math.IsNaN(v) || (x != nil && math.IsNaN(x[i])) {
				continue
			}
			outD = append(outD, v)
			if x != nil {
				outX = append(outX, x[i])
			}
		}

		return outD, outX, nil

	default:
		// Construction validates the mode; this branch is unreachable.
		return nil, nil, ErrUnknownMissing
	}
}
