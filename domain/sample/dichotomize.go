package sample

import (
	"fmt"

	"gojoins/domain/core"
	"gojoins/domain/joins"

	"github.com/montanaflynn/stats"
)

// CutPolicy selects how the cutpoint of a dichotomization is chosen.
type CutPolicy string

const (
	// CutThreshold uses an explicit caller-supplied cutpoint.
	CutThreshold CutPolicy = "threshold"
	// CutMedian cuts at the sample median (the default).
	CutMedian CutPolicy = "median"
	// CutMean cuts at the sample mean.
	CutMean CutPolicy = "mean"
)

// DichotomizeConfig controls the numeric-to-symbol conversion. Zero values
// mean: median cut, high symbol "1", low symbol "0".
type DichotomizeConfig struct {
	Policy    CutPolicy    `json:"policy,omitempty"`
	Threshold float64      `json:"threshold,omitempty"`
	High      joins.Symbol `json:"high,omitempty"`
	Low       joins.Symbol `json:"low,omitempty"`
}

// Dichotomize converts numeric data into a two-symbol sequence: values
// strictly above the cutpoint map to the high symbol, the rest to the low
// symbol. Order is preserved, so join structure in the numeric data survives
// the conversion.
func Dichotomize(data []float64, cfg DichotomizeConfig) ([]joins.Symbol, error) {
	if len(data) == 0 {
		return nil, core.ErrEmptySample
	}

	high, low := cfg.High, cfg.Low
	if high == "" {
		high = "1"
	}
	if low == "" {
		low = "0"
	}
	if high == low {
		return nil, core.NewInvalidParameterError("symbols", "high and low must differ")
	}

	cut, err := cutpoint(data, cfg)
	if err != nil {
		return nil, err
	}

	symbols := make([]joins.Symbol, len(data))
	for i, v := range data {
		if v > cut {
			symbols[i] = high
		} else {
			symbols[i] = low
		}
	}
	return symbols, nil
}

func cutpoint(data []float64, cfg DichotomizeConfig) (float64, error) {
	switch cfg.Policy {
	case CutThreshold:
		return cfg.Threshold, nil
	case CutMean:
		mean, err := stats.Mean(data)
		if err != nil {
			return 0, fmt.Errorf("failed to compute mean cutpoint: %w", err)
		}
		return mean, nil
	case CutMedian, "":
		median, err := stats.Median(data)
		if err != nil {
			return 0, fmt.Errorf("failed to compute median cutpoint: %w", err)
		}
		return median, nil
	default:
		return 0, core.NewInvalidParameterError("policy", fmt.Sprintf("unknown cut policy %q", cfg.Policy))
	}
}
