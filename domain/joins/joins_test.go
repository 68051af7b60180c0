package joins

import (
	"testing"

	"gojoins/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symbols(names ...string) []Symbol {
	out := make([]Symbol, len(names))
	for i, n := range names {
		out[i] = Symbol(n)
	}
	return out
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func symbolPtr(s Symbol) *Symbol  { return &s }

// Reference values from the published worked examples for the joins test.
func TestRun_GoldStandardScenarios(t *testing.T) {
	tests := []struct {
		name     string
		sequence []Symbol
		observed int
		expected float64
		variance float64
		zScore   float64
		pValue   float64
	}{
		{
			name:     "single early join",
			sequence: symbols("ban", "che", "che", "che", "che", "che", "che", "che"),
			observed: 1,
			expected: 3.50,
			variance: 1.75,
			zScore:   -1.5119,
			pValue:   0.13057,
		},
		{
			name:     "near expectation",
			sequence: symbols("ban", "ban", "che", "ban", "che", "ban", "ban", "ban"),
			observed: 4,
			expected: 3.50,
			variance: 1.75,
			zScore:   0,
			pValue:   1.0,
		},
		{
			name:     "dichotomized binary data",
			sequence: symbols("1", "0", "1", "0", "1", "0", "0", "0"),
			observed: 5,
			expected: 3.50,
			variance: 1.75,
			zScore:   0.7559,
			pValue:   0.44970,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Run(TestConfig{Sequence: tt.sequence})
			require.NoError(t, err)

			assert.Equal(t, tt.observed, result.Observed)
			assert.InDelta(t, tt.expected, result.Expected, 1e-9)
			assert.InDelta(t, tt.variance, result.Variance, 1e-9)
			assert.InDelta(t, tt.zScore, result.ZScore, 1e-4)
			assert.InDelta(t, tt.pValue, result.PValue, 1e-4)
			assert.False(t, result.Degenerate)
		})
	}
}

// ESP-60 reference: 200 trials at p=0.5 with no data at all.
func TestRun_ParameterOnly(t *testing.T) {
	result, err := Run(TestConfig{
		Observed: intPtr(90),
		Trials:   intPtr(200),
		Prob:     floatPtr(0.5),
	})
	require.NoError(t, err)

	assert.InDelta(t, 99.5, result.Expected, 1e-9)
	assert.InDelta(t, 49.75, result.Variance, 1e-9)
}

func TestMoments_ClosedForm(t *testing.T) {
	tests := []struct {
		trials   int
		prob     float64
		expected float64
		variance float64
	}{
		{8, 0.5, 3.5, 1.75},
		{200, 0.5, 99.5, 49.75},
		{10, 0.3, 3.78, 2.73},
		{0, 0.5, 0, 0},
		{10, 0, 0, 0},
		{10, 1, 0, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Expected(tt.trials, tt.prob), 1e-9,
			"Expected(%d, %v)", tt.trials, tt.prob)
		assert.InDelta(t, tt.variance, Variance(tt.trials, tt.prob), 1e-9,
			"Variance(%d, %v)", tt.trials, tt.prob)
	}
}

// The moments depend on p only through pq, so swapping which symbol counts
// as the event cannot change them.
func TestMoments_SymmetricInP(t *testing.T) {
	for _, p := range []float64{0, 0.1, 0.25, 0.4, 0.5} {
		assert.InDelta(t, Expected(50, p), Expected(50, 1-p), 1e-12)
		assert.InDelta(t, Variance(50, p), Variance(50, 1-p), 1e-12)
	}
}

func TestRun_StateSwapIsSymmetric(t *testing.T) {
	seq := symbols("ban", "che", "che", "ban", "che", "che", "che", "ban")

	forBan, err := Run(TestConfig{Sequence: seq, State: symbolPtr("ban")})
	require.NoError(t, err)
	forChe, err := Run(TestConfig{Sequence: seq, State: symbolPtr("che")})
	require.NoError(t, err)

	assert.InDelta(t, forBan.Expected, forChe.Expected, 1e-12)
	assert.InDelta(t, forBan.Variance, forChe.Variance, 1e-12)
	assert.InDelta(t, forBan.ZScore, forChe.ZScore, 1e-12)
}

func TestResolveProb_StateFrequency(t *testing.T) {
	seq := symbols("ban", "che", "che", "che", "che", "che", "che", "che")

	expected, err := ComputeExpected(TestConfig{Sequence: seq, State: symbolPtr("ban")})
	require.NoError(t, err)

	// p = 1/8, E = 2*7*(1/8)*(7/8)
	assert.InDelta(t, 2*7*0.125*0.875, expected, 1e-9)
}

func TestResolveProb_DefaultsToHalf(t *testing.T) {
	expected, err := ComputeExpected(TestConfig{Trials: intPtr(8)})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, expected, 1e-9)

	// An empty sequence with a state symbol falls back to 0.5 too.
	expected, err = ComputeExpected(TestConfig{
		Sequence: []Symbol{},
		Trials:   intPtr(8),
		State:    symbolPtr("ban"),
	})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, expected, 1e-9)
}

func TestRun_ExplicitValuesWinOverSequence(t *testing.T) {
	seq := symbols("a", "b", "a", "b")

	result, err := Run(TestConfig{
		Sequence: seq,
		Observed: intPtr(1),
		Trials:   intPtr(8),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Observed, "explicit observed must win over the counted 3")
	assert.Equal(t, 8, result.Trials, "explicit trials must win over len(sequence)")
}

func TestZScore_ContinuityCorrection(t *testing.T) {
	// Correction shrinks the deviation toward zero from either side.
	z, err := ZScore(5, 3.5, 1.75, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.7559, z, 1e-4)

	z, err = ZScore(5, 3.5, 1.75, false)
	require.NoError(t, err)
	assert.InDelta(t, 1.1339, z, 1e-4)

	// No correction applies when observed equals expected exactly.
	z, err = ZScore(3.5, 3.5, 1.75, true)
	require.NoError(t, err)
	assert.Zero(t, z)
}

func TestZScore_DegenerateVariance(t *testing.T) {
	_, err := ZScore(3, 0, 0, true)
	assert.ErrorIs(t, err, core.ErrDegenerateVariance)
}

func TestRun_DegenerateFallsBackToCertainty(t *testing.T) {
	// One-sided sequence: p estimated from state is 1, so the variance is 0.
	result, err := Run(TestConfig{
		Sequence: symbols("che", "che", "che", "che"),
		State:    symbolPtr("che"),
	})
	require.NoError(t, err)

	assert.True(t, result.Degenerate)
	assert.Zero(t, result.ZScore)
	assert.Equal(t, 1.0, result.PValue)
}

func TestPValue_Tails(t *testing.T) {
	// z=0 under the null: certainty, exactly.
	p, err := PValue(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	twoTailed, err := PValue(0.7559, 2)
	require.NoError(t, err)
	oneTailed, err := PValue(0.7559, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.4497, twoTailed, 1e-4)
	assert.InDelta(t, twoTailed/2, oneTailed, 1e-12)

	// The one-tailed convention is magnitude-based: the mirrored z reports
	// the same tail probability.
	mirrored, err := PValue(-0.7559, 1)
	require.NoError(t, err)
	assert.InDelta(t, oneTailed, mirrored, 1e-12)

	_, err = PValue(1.0, 3)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestRun_Precision(t *testing.T) {
	result, err := Run(TestConfig{
		Sequence:  symbols("1", "0", "1", "0", "1", "0", "0", "0"),
		Precision: 3,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.756, result.ZScore, 1e-9)
	assert.InDelta(t, 0.450, result.PValue, 1e-9)
}

func TestRun_InvalidParameters(t *testing.T) {
	_, err := Run(TestConfig{Trials: intPtr(8), Prob: floatPtr(1.5), Observed: intPtr(2)})
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = Run(TestConfig{Trials: intPtr(-1), Observed: intPtr(2)})
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = Run(TestConfig{Trials: intPtr(8), Observed: intPtr(-2)})
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = Run(TestConfig{Sequence: symbols("a", "b", "a"), Tails: 3})
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	// No observed count and no sequence to derive one from.
	_, err = Run(TestConfig{Trials: intPtr(8)})
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}
