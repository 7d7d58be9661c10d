// Package params: parameter, expression, and sentinel error definitions.
package params

import (
	"errors"
	"math"
)

// Sentinel errors for store operations.
var (
	// ErrEmptyName indicates a parameter name is the empty string.
	ErrEmptyName = errors.New("params: parameter name is empty")

	// ErrUnknownParam indicates an operation referenced a name that is
	// not registered in the store.
	ErrUnknownParam = errors.New("params: unknown parameter")

	// ErrDerivedParam indicates an attempt to independently assign or
	// vary a derived (expression-bound) parameter.
	ErrDerivedParam = errors.New("params: parameter is derived from an expression")

	// ErrBadBounds indicates min > max was supplied to SetBounds.
	ErrBadBounds = errors.New("params: lower bound exceeds upper bound")

	// ErrBadExpr indicates a malformed derived-parameter expression
	// (unknown op, wrong operand count, empty or self-referential operand).
	ErrBadExpr = errors.New("params: invalid derived-parameter expression")

	// ErrExprCycle indicates derived parameters reference each other in
	// a loop, so no value can be computed.
	ErrExprCycle = errors.New("params: derived-parameter expression cycle")
)

// Op identifies the operator of a derived-parameter expression.
// Expressions are structured (op, operand names, constant) triples; the
// store never parses textual formulas.
type Op int

const (
	// OpScale computes Const × value(Operands[0]). It covers every
	// fixed-multiple constraint (fwhm = factor × sigma and friends).
	OpScale Op = iota
)

// Expr is a structured derived-parameter expression. The referenced
// operands are resolved by exact name against the owning store on every
// read, so a derived value can never go stale.
type Expr struct {
	// Op selects the operator.
	Op Op

	// Operands lists the referenced parameter names. OpScale takes
	// exactly one.
	Operands []string

	// Const is the numeric constant of the expression.
	Const float64
}

// Param is a read-only snapshot of one stored parameter, as returned by
// Store.Get. Mutating it does not touch the store.
type Param struct {
	// Name is the exact registered name.
	Name string

	// Value is the current value; for a derived parameter it is the
	// expression result at snapshot time.
	Value float64

	// Min and Max are optimizer bounds. Defaults are ±Inf (unbounded);
	// the store records them and never clamps.
	Min, Max float64

	// Vary reports whether an optimizer should treat the parameter as
	// free. Defaults to true; always false for derived parameters.
	Vary bool

	// Derived reports whether the value is expression-bound.
	Derived bool

	// Expr is the binding expression when Derived is true.
	Expr Expr
}

// entry is the mutable in-store representation of a parameter.
type entry struct {
	value    float64
	min, max float64
	vary     bool
	derived  bool
	expr     Expr
}

// newEntry returns a free parameter entry with unbounded limits.
func newEntry(value float64) *entry {
	return &entry{
		value: value,
		min:   math.Inf(-1),
		max:   math.Inf(1),
		vary:  true,
	}
}
