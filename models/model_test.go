package models_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlfit/models"
	"github.com/katalvlaran/lvlfit/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewModel_NilStore rejects construction without a parameter store.
func TestNewModel_NilStore(t *testing.T) {
	_, err := models.NewGaussian(nil, models.DefaultOptions())
	assert.ErrorIs(t, err, models.ErrNilStore)
}

// TestNewModel_Dimensionality enforces exactly one independent variable.
func TestNewModel_Dimensionality(t *testing.T) {
	st := params.New()

	opts := models.DefaultOptions()
	opts.IndependentVars = []string{"x", "y"}
	_, err := models.NewGaussian(st, opts)
	assert.ErrorIs(t, err, models.ErrDimensionality, "two independent variables")

	opts.IndependentVars = []string{}
	_, err = models.NewGaussian(st, opts)
	assert.ErrorIs(t, err, models.ErrDimensionality, "explicitly empty list")

	// nil means unspecified and defaults to ["x"].
	opts.IndependentVars = nil
	_, err = models.NewGaussian(st, opts)
	assert.NoError(t, err)
}

// TestNewModel_UnknownMissing rejects unrecognized missing-data modes.
func TestNewModel_UnknownMissing(t *testing.T) {
	opts := models.DefaultOptions()
	opts.Missing = models.Missing(9)

	_, err := models.NewConstant(params.New(), opts)
	assert.ErrorIs(t, err, models.ErrUnknownMissing)
}

// TestModel_ParamRegistration checks that construction registers every
// composed name at 0, with the derived fwhm bound last.
func TestModel_ParamRegistration(t *testing.T) {
	st := params.New()
	m, err := models.NewGaussian(st, models.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"amplitude", "center", "sigma", "fwhm"}, m.ParamNames())
	assert.Equal(t, []string{"amplitude", "center", "sigma", "fwhm"}, st.Names())

	v, err := st.Value("amplitude")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "primaries start at 0")

	p, err := st.Get("fwhm")
	require.NoError(t, err)
	assert.True(t, p.Derived, "fwhm must be expression-bound")
}

// TestModel_PrefixDisjoint: two instances of one shape on one store with
// distinct prefixes expose fully disjoint name sets.
func TestModel_PrefixDisjoint(t *testing.T) {
	st := params.New()

	aOpts := models.DefaultOptions()
	aOpts.Prefix = "a_"
	a, err := models.NewGaussian(st, aOpts)
	require.NoError(t, err)

	bOpts := models.DefaultOptions()
	bOpts.Prefix = "b_"
	b, err := models.NewGaussian(st, bOpts)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, n := range a.ParamNames() {
		seen[n] = true
	}
	for _, n := range b.ParamNames() {
		assert.False(t, seen[n], "name %q must not collide across prefixes", n)
	}
	assert.Equal(t, 8, st.Len(), "4 names per instance, no sharing")
}

// TestModel_SuffixNaming verifies suffix composition end to end.
func TestModel_SuffixNaming(t *testing.T) {
	st := params.New()
	opts := models.DefaultOptions()
	opts.Prefix = "p_"
	opts.Suffix = "_1"

	m, err := models.NewLorentzian(st, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"p_amplitude_1", "p_center_1", "p_sigma_1", "p_fwhm_1"}, m.ParamNames())
	assert.True(t, st.Has("p_fwhm_1"))
}

// TestModel_GuessStateMachine checks the one-way unguessed → guessed
// transition, re-asserted by repeat guesses.
func TestModel_GuessStateMachine(t *testing.T) {
	st := params.New()
	m, err := models.NewConstant(st, models.DefaultOptions())
	require.NoError(t, err)

	assert.False(t, m.HasInitialGuess(), "fresh model is unguessed")

	require.NoError(t, m.Guess([]float64{2, 4}, nil, nil))
	assert.True(t, m.HasInitialGuess())
	v, _ := st.Value("c")
	assert.Equal(t, 3.0, v)

	// A second guess overwrites and keeps the state asserted.
	require.NoError(t, m.Guess([]float64{10, 20}, nil, nil))
	assert.True(t, m.HasInitialGuess())
	v, _ = st.Value("c")
	assert.Equal(t, 15.0, v)
}

// TestModel_GuessValidation covers the fail-fast guess errors.
func TestModel_GuessValidation(t *testing.T) {
	st := params.New()
	m, err := models.NewLinear(st, models.DefaultOptions())
	require.NoError(t, err)

	assert.ErrorIs(t, m.Guess(nil, nil, nil), models.ErrEmptyData)
	assert.ErrorIs(t, m.Guess([]float64{1, 2}, []float64{1}, nil), models.ErrLengthMismatch)
	assert.False(t, m.HasInitialGuess(), "failed guesses must not transition the state")
}

// TestModel_MissingRaise fails fast on NaN observations.
func TestModel_MissingRaise(t *testing.T) {
	st := params.New()
	opts := models.DefaultOptions()
	opts.Missing = models.MissingRaise

	m, err := models.NewConstant(st, opts)
	require.NoError(t, err)

	err = m.Guess([]float64{1, math.NaN(), 3}, nil, nil)
	assert.ErrorIs(t, err, models.ErrMissingValues)
}

// TestModel_MissingDrop removes NaN observations (and their x
// counterparts) before guessing.
func TestModel_MissingDrop(t *testing.T) {
	st := params.New()
	opts := models.DefaultOptions()
	opts.Missing = models.MissingDrop

	m, err := models.NewConstant(st, opts)
	require.NoError(t, err)

	require.NoError(t, m.Guess([]float64{2, math.NaN(), 4}, nil, nil))
	v, _ := st.Value("c")
	assert.Equal(t, 3.0, v, "mean over the surviving observations")

	// Dropping everything leaves nothing to guess from.
	err = m.Guess([]float64{math.NaN(), math.NaN()}, nil, nil)
	assert.ErrorIs(t, err, models.ErrEmptyData)
}

// TestModel_Eval evaluates the bound formula with the store's current
// values, tracking manual updates.
func TestModel_Eval(t *testing.T) {
	st := params.New()
	m, err := models.NewLinear(st, models.DefaultOptions())
	require.NoError(t, err)

	require.NoError(t, st.Set("slope", 3))
	require.NoError(t, st.Set("intercept", 5))

	got, err := m.Eval([]float64{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 8, 11}, got)
}
