package params_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlfit/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fwhmExpr binds name "fwhm" to factor × sigma for the tests below.
func fwhmExpr(factor float64) params.Expr {
	return params.Expr{Op: params.OpScale, Operands: []string{"sigma"}, Const: factor}
}

// TestStore_AddSetValue covers plain registration, update-in-place, and
// reads.
func TestStore_AddSetValue(t *testing.T) {
	st := params.New()

	require.NoError(t, st.Add("amplitude", 2.5))
	v, err := st.Value("amplitude")
	assert.NoError(t, err)
	assert.Equal(t, 2.5, v)

	// Idempotent re-registration updates in place.
	require.NoError(t, st.Add("amplitude", 4.0))
	v, _ = st.Value("amplitude")
	assert.Equal(t, 4.0, v, "re-Add must update the value")
	assert.Equal(t, 1, st.Len(), "re-Add must not duplicate the entry")

	require.NoError(t, st.Set("amplitude", -1.0))
	v, _ = st.Value("amplitude")
	assert.Equal(t, -1.0, v)
}

// TestStore_Errors exercises the sentinel errors of the basic surface.
func TestStore_Errors(t *testing.T) {
	st := params.New()

	assert.ErrorIs(t, st.Add("", 1), params.ErrEmptyName)
	assert.ErrorIs(t, st.Set("nope", 1), params.ErrUnknownParam)
	_, err := st.Value("nope")
	assert.ErrorIs(t, err, params.ErrUnknownParam)
	_, err = st.Get("nope")
	assert.ErrorIs(t, err, params.ErrUnknownParam)
	assert.ErrorIs(t, st.SetVary("nope", false), params.ErrUnknownParam)
	assert.ErrorIs(t, st.SetBounds("nope", 0, 1), params.ErrUnknownParam)

	require.NoError(t, st.Add("sigma", 1))
	assert.ErrorIs(t, st.SetBounds("sigma", 2, 1), params.ErrBadBounds)
}

// TestStore_NamesOrder verifies deterministic insertion-order iteration.
func TestStore_NamesOrder(t *testing.T) {
	st := params.New()
	for _, n := range []string{"c", "a", "b"} {
		require.NoError(t, st.Add(n, 0))
	}

	assert.Equal(t, []string{"c", "a", "b"}, st.Names(), "Names must follow insertion order")

	// Re-registration keeps the original position.
	require.NoError(t, st.Add("a", 9))
	assert.Equal(t, []string{"c", "a", "b"}, st.Names())
}

// TestStore_Derived verifies the derived-parameter contract: recomputed
// on every read, never settable, never varied.
func TestStore_Derived(t *testing.T) {
	st := params.New()
	require.NoError(t, st.Add("sigma", 2.0))
	require.NoError(t, st.AddDerived("fwhm", fwhmExpr(2.354820)))

	v, err := st.Value("fwhm")
	assert.NoError(t, err)
	assert.InDelta(t, 4.709640, v, 1e-12, "fwhm = factor × sigma")

	// A primary update must be visible immediately.
	require.NoError(t, st.Set("sigma", 3.0))
	v, _ = st.Value("fwhm")
	assert.InDelta(t, 7.064460, v, 1e-12, "derived value must track its primary")

	// Never independently assignable or varied.
	assert.ErrorIs(t, st.Set("fwhm", 1.0), params.ErrDerivedParam)
	assert.ErrorIs(t, st.Add("fwhm", 1.0), params.ErrDerivedParam)
	assert.ErrorIs(t, st.SetVary("fwhm", true), params.ErrDerivedParam)

	p, err := st.Get("fwhm")
	require.NoError(t, err)
	assert.True(t, p.Derived)
	assert.False(t, p.Vary, "derived parameters are never free")
}

// TestStore_DerivedReRegistration checks idempotent re-registration and
// expression replacement.
func TestStore_DerivedReRegistration(t *testing.T) {
	st := params.New()
	require.NoError(t, st.Add("sigma", 1.0))
	require.NoError(t, st.AddDerived("fwhm", fwhmExpr(2.0)))
	require.NoError(t, st.AddDerived("fwhm", fwhmExpr(2.0)), "identical re-registration must succeed")

	require.NoError(t, st.AddDerived("fwhm", fwhmExpr(3.60131)))
	v, _ := st.Value("fwhm")
	assert.InDelta(t, 3.60131, v, 1e-12, "re-registration replaces the expression")
	assert.Equal(t, 2, st.Len())
}

// TestStore_BadExpr rejects malformed expressions at registration.
func TestStore_BadExpr(t *testing.T) {
	st := params.New()

	assert.ErrorIs(t, st.AddDerived("d", params.Expr{Op: params.OpScale, Const: 1}),
		params.ErrBadExpr, "OpScale needs exactly one operand")
	assert.ErrorIs(t, st.AddDerived("d", params.Expr{Op: params.OpScale, Operands: []string{""}, Const: 1}),
		params.ErrBadExpr, "empty operand name")
	assert.ErrorIs(t, st.AddDerived("d", params.Expr{Op: params.OpScale, Operands: []string{"d"}, Const: 1}),
		params.ErrBadExpr, "self-reference")
	assert.ErrorIs(t, st.AddDerived("d", params.Expr{Op: params.Op(99), Operands: []string{"s"}, Const: 1}),
		params.ErrBadExpr, "unknown operator")
}

// TestStore_ExprCycle detects mutually referencing derived parameters.
func TestStore_ExprCycle(t *testing.T) {
	st := params.New()
	require.NoError(t, st.AddDerived("a", params.Expr{Op: params.OpScale, Operands: []string{"b"}, Const: 1}))
	require.NoError(t, st.AddDerived("b", params.Expr{Op: params.OpScale, Operands: []string{"a"}, Const: 1}))

	_, err := st.Value("a")
	assert.ErrorIs(t, err, params.ErrExprCycle)
}

// TestStore_BoundsAndVary verifies metadata recording without clamping.
func TestStore_BoundsAndVary(t *testing.T) {
	st := params.New()
	require.NoError(t, st.Add("decay", 5.0))

	p, err := st.Get("decay")
	require.NoError(t, err)
	assert.True(t, math.IsInf(p.Min, -1), "default lower bound is -Inf")
	assert.True(t, math.IsInf(p.Max, 1), "default upper bound is +Inf")
	assert.True(t, p.Vary, "parameters default to free")

	require.NoError(t, st.SetBounds("decay", 0, 100))
	require.NoError(t, st.SetVary("decay", false))
	require.NoError(t, st.Set("decay", 500)) // out of bounds: recorded, not clamped

	p, _ = st.Get("decay")
	assert.Equal(t, 0.0, p.Min)
	assert.Equal(t, 100.0, p.Max)
	assert.False(t, p.Vary)
	assert.Equal(t, 500.0, p.Value, "the store records, the optimizer enforces")
}
