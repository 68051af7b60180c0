package joins

import (
	"math"

	"gojoins/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// PValue maps a z-score to a significance level via the standard normal CDF.
//
// With tails=2 it reports 2*(1-Phi(|z|)), the probability of a deviation at
// least as large as |z| in either direction. With tails=1 it reports
// 1-Phi(|z|): the probability of a deviation at least as large as |z| in the
// direction actually observed (the sign of z picks the tail, the magnitude
// convention means the caller never sees a p above 0.5 from a one-tailed
// test unless z is 0). Any other tails value is rejected.
func PValue(z float64, tails int) (float64, error) {
	upper := 1 - distuv.UnitNormal.CDF(math.Abs(z))

	var p float64
	switch tails {
	case 1:
		p = upper
	case 2:
		p = 2 * upper
	default:
		return 0, core.NewInvalidParameterError("tails", "must be 1 or 2")
	}

	return clamp01(p), nil
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
