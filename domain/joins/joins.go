// Package joins implements the Wishart–Hirshfeld joins statistic: a test of
// sequential structure in a dichotomous sequence based on counting
// alternations between the two symbol classes, with a normal-approximation
// significance test.
package joins

import (
	"gojoins/domain/core"

	"github.com/montanaflynn/stats"
)

// Symbol is a single element of a dichotomous sequence. Any two-valued
// labeling works; symbols are compared by equality only.
type Symbol string

// TestConfig carries the inputs of a joins computation. Explicit values
// always win over values derived from Sequence:
//   - Observed: precomputed join count (derived from Sequence otherwise)
//   - Trials: trial count (defaults to len(Sequence))
//   - Prob: event probability in [0,1] (defaults to the relative frequency
//     of State in Sequence when State is set, 0.5 otherwise)
type TestConfig struct {
	Sequence []Symbol `json:"sequence,omitempty"`
	Observed *int     `json:"observed,omitempty"`
	Trials   *int     `json:"trials,omitempty"`
	Prob     *float64 `json:"prob,omitempty"`
	State    *Symbol  `json:"state,omitempty"`

	// NoCorrection disables the continuity correction (on by default).
	NoCorrection bool `json:"no_correction,omitempty"`

	// Tails selects a one- or two-tailed p-value. Zero means two-tailed.
	Tails int `json:"tails,omitempty"`

	// Precision rounds the reported z-score and p-value to this many decimal
	// places. Zero leaves them unrounded. The p-value is always computed
	// from the unrounded z-score.
	Precision int `json:"precision,omitempty"`
}

// JoinStatistics is an immutable snapshot of one joins test.
type JoinStatistics struct {
	Observed   int     `json:"observed"`
	Trials     int     `json:"trials"`
	Prob       float64 `json:"prob"`
	Expected   float64 `json:"expected"`
	Variance   float64 `json:"variance"`
	ZScore     float64 `json:"z_score"`
	PValue     float64 `json:"p_value"`
	Degenerate bool    `json:"degenerate"`
}

// Run executes the full pipeline: observed count, moments, z-transform and
// significance. A zero variance (probability 0 or 1, or trial count <= 1)
// yields Degenerate=true with z=0 and p=1.0 instead of an error.
func Run(cfg TestConfig) (JoinStatistics, error) {
	trials, err := resolveTrials(cfg)
	if err != nil {
		return JoinStatistics{}, err
	}
	prob, err := resolveProb(cfg)
	if err != nil {
		return JoinStatistics{}, err
	}
	observed, err := resolveObserved(cfg)
	if err != nil {
		return JoinStatistics{}, err
	}

	result := JoinStatistics{
		Observed: observed,
		Trials:   trials,
		Prob:     prob,
		Expected: Expected(trials, prob),
		Variance: Variance(trials, prob),
	}

	z, err := ZScore(float64(observed), result.Expected, result.Variance, !cfg.NoCorrection)
	if core.IsDegenerateError(err) {
		result.Degenerate = true
		result.PValue = 1.0
		return result, nil
	}
	if err != nil {
		return JoinStatistics{}, err
	}

	p, err := PValue(z, tailsOrDefault(cfg.Tails))
	if err != nil {
		return JoinStatistics{}, err
	}

	result.ZScore = roundTo(z, cfg.Precision)
	result.PValue = roundTo(p, cfg.Precision)
	return result, nil
}

// ComputeExpected resolves trials and probability from cfg and returns the
// expected join count.
func ComputeExpected(cfg TestConfig) (float64, error) {
	trials, err := resolveTrials(cfg)
	if err != nil {
		return 0, err
	}
	prob, err := resolveProb(cfg)
	if err != nil {
		return 0, err
	}
	return Expected(trials, prob), nil
}

// ComputeVariance resolves trials and probability from cfg and returns the
// variance of the join count.
func ComputeVariance(cfg TestConfig) (float64, error) {
	trials, err := resolveTrials(cfg)
	if err != nil {
		return 0, err
	}
	prob, err := resolveProb(cfg)
	if err != nil {
		return 0, err
	}
	return Variance(trials, prob), nil
}

// ComputeZScore resolves all inputs from cfg and returns the standardized
// deviation of the observed join count. Returns ErrDegenerateVariance when
// the variance is zero.
func ComputeZScore(cfg TestConfig) (float64, error) {
	trials, err := resolveTrials(cfg)
	if err != nil {
		return 0, err
	}
	prob, err := resolveProb(cfg)
	if err != nil {
		return 0, err
	}
	observed, err := resolveObserved(cfg)
	if err != nil {
		return 0, err
	}
	z, err := ZScore(float64(observed), Expected(trials, prob), Variance(trials, prob), !cfg.NoCorrection)
	if err != nil {
		return 0, err
	}
	return roundTo(z, cfg.Precision), nil
}

// ComputePValue resolves all inputs from cfg and returns the significance of
// the observed join count. The degenerate zero-variance case reports 1.0.
func ComputePValue(cfg TestConfig) (float64, error) {
	result, err := Run(cfg)
	if err != nil {
		return 0, err
	}
	return result.PValue, nil
}

func resolveTrials(cfg TestConfig) (int, error) {
	if cfg.Trials != nil {
		if *cfg.Trials < 0 {
			return 0, core.NewInvalidParameterError("trials", "must be non-negative")
		}
		return *cfg.Trials, nil
	}
	return len(cfg.Sequence), nil
}

func resolveProb(cfg TestConfig) (float64, error) {
	if cfg.Prob != nil {
		if *cfg.Prob < 0 || *cfg.Prob > 1 {
			return 0, core.NewInvalidParameterError("prob", "must lie in [0,1]")
		}
		return *cfg.Prob, nil
	}
	if cfg.State != nil && len(cfg.Sequence) > 0 {
		hits := 0
		for _, s := range cfg.Sequence {
			if s == *cfg.State {
				hits++
			}
		}
		return float64(hits) / float64(len(cfg.Sequence)), nil
	}
	return 0.5, nil
}

func resolveObserved(cfg TestConfig) (int, error) {
	if cfg.Observed != nil {
		if *cfg.Observed < 0 {
			return 0, core.NewInvalidParameterError("observed", "must be non-negative")
		}
		return *cfg.Observed, nil
	}
	if cfg.Sequence == nil {
		return 0, core.NewInvalidParameterError("observed", "requires an observed count or a sequence")
	}
	return CountObserved(cfg.Sequence)
}

func tailsOrDefault(tails int) int {
	if tails == 0 {
		return 2
	}
	return tails
}

func roundTo(v float64, places int) float64 {
	if places <= 0 {
		return v
	}
	rounded, err := stats.Round(v, places)
	if err != nil {
		// stats.Round only fails on NaN, which the pipeline never produces.
		return v
	}
	return rounded
}
