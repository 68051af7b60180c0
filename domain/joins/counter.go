package joins

import (
	"gojoins/domain/core"
)

// CountObserved scans a sequence once and counts adjacent-element
// inequalities (joins). Sequences shorter than 2 elements have no pairs and
// count 0. A sequence with more than two distinct symbols is not dichotomous
// and returns ErrMalformedSequence.
func CountObserved(seq []Symbol) (int, error) {
	if err := checkDichotomous(seq); err != nil {
		return 0, err
	}
	if len(seq) < 2 {
		return 0, nil
	}

	count := 0
	for i := 1; i < len(seq); i++ {
		if seq[i] != seq[i-1] {
			count++
		}
	}
	return count, nil
}

// checkDichotomous verifies a sequence carries at most two distinct symbols.
// A single distinct symbol is degenerate but valid.
func checkDichotomous(seq []Symbol) error {
	var first, second Symbol
	seen := 0
	for _, s := range seq {
		switch {
		case seen == 0:
			first = s
			seen = 1
		case seen == 1 && s != first:
			second = s
			seen = 2
		case seen == 2 && s != first && s != second:
			return core.ErrMalformedSequence
		}
	}
	return nil
}
