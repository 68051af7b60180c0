// Package sample holds labeled symbol sequences and the helpers that turn
// raw numeric data into the dichotomous form the joins engine consumes.
package sample

import (
	"time"

	"gojoins/domain/core"
	"gojoins/domain/joins"
)

// Sample is a stored symbol sequence. Name is empty for anonymous samples,
// which are addressable only by ID.
type Sample struct {
	ID        core.SampleID  `json:"id" db:"id"`
	Name      string         `json:"name,omitempty" db:"name"`
	Symbols   []joins.Symbol `json:"symbols" db:"-"`
	Source    string         `json:"source,omitempty" db:"source"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// New creates a sample with a fresh time-ordered ID.
func New(name string, symbols []joins.Symbol, source string) *Sample {
	return &Sample{
		ID:        core.SampleID(core.NewID()),
		Name:      name,
		Symbols:   symbols,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
}

// Anonymous reports whether the sample has no name.
func (s *Sample) Anonymous() bool {
	return s.Name == ""
}

// Result pairs a computed joins test with the sample it was computed from.
type Result struct {
	ID         core.ResultID        `json:"id" db:"id"`
	SampleID   core.SampleID        `json:"sample_id" db:"sample_id"`
	SampleName string               `json:"sample_name,omitempty" db:"sample_name"`
	Stats      joins.JoinStatistics `json:"stats" db:"-"`
	CreatedAt  time.Time            `json:"created_at" db:"created_at"`
}

// NewResult wraps a computed statistic snapshot for persistence.
func NewResult(s *Sample, stats joins.JoinStatistics) *Result {
	return &Result{
		ID:         core.ResultID(core.NewID()),
		SampleID:   s.ID,
		SampleName: s.Name,
		Stats:      stats,
		CreatedAt:  time.Now().UTC(),
	}
}
