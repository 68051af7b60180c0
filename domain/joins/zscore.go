package joins

import (
	"math"

	"gojoins/domain/core"
)

// ZScore standardizes an observed join count against the model moments:
//
//	z = (O - E - sign(O-E) * 0.5 * cc) / sqrt(V)
//
// where cc is 1 when the continuity correction is enabled and sign(0) is 0,
// so no correction applies when the observation matches expectation exactly.
// A zero variance returns ErrDegenerateVariance rather than dividing; a
// negative variance is a caller error.
func ZScore(observed, expected, variance float64, correction bool) (float64, error) {
	if variance < 0 {
		return 0, core.NewInvalidParameterError("variance", "must be non-negative")
	}
	if variance == 0 {
		return 0, core.ErrDegenerateVariance
	}

	deviation := observed - expected
	if correction {
		switch {
		case deviation > 0:
			deviation -= 0.5
		case deviation < 0:
			deviation += 0.5
		}
	}
	return deviation / math.Sqrt(variance), nil
}
