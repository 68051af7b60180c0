package app

import (
	"context"
	"sync"
	"time"

	"gojoins/domain/joins"
	"gojoins/ports"

	"golang.org/x/sync/semaphore"
)

// SweepService runs the joins test across every cached sample with bounded
// concurrency. Per-sample failures are collected rather than aborting the
// sweep.
type SweepService struct {
	store       ports.SampleStore
	concurrency int64
}

// SweepEntry is the outcome for a single sample.
type SweepEntry struct {
	SampleName string                `json:"sample_name,omitempty"`
	SampleID   string                `json:"sample_id"`
	Stats      *joins.JoinStatistics `json:"stats,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// SweepResult is the aggregate outcome of one sweep.
type SweepResult struct {
	Entries   []SweepEntry `json:"entries"`
	Tested    int          `json:"tested"`
	Failed    int          `json:"failed"`
	RuntimeMs int64        `json:"runtime_ms"`
}

// NewSweepService creates a sweep service with the given concurrency limit.
// Limits below 1 are coerced to 4.
func NewSweepService(store ports.SampleStore, concurrency int64) *SweepService {
	if concurrency < 1 {
		concurrency = 4
	}
	return &SweepService{store: store, concurrency: concurrency}
}

// Run tests every cached sample with the shared config (tails, correction,
// precision apply to all; sequence fields are per-sample).
func (s *SweepService) Run(ctx context.Context, shared joins.TestConfig) (*SweepResult, error) {
	start := time.Now()
	samples := s.store.List()

	sem := semaphore.NewWeighted(s.concurrency)
	entries := make([]SweepEntry, len(samples))
	var wg sync.WaitGroup

	for i, smp := range samples {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(idx int, name string, id string, symbols []joins.Symbol) {
			defer sem.Release(1)
			defer wg.Done()

			cfg := shared
			cfg.Sequence = symbols
			entry := SweepEntry{SampleName: name, SampleID: id}
			result, err := joins.Run(cfg)
			if err != nil {
				entry.Error = err.Error()
			} else {
				entry.Stats = &result
			}
			entries[idx] = entry
		}(i, smp.Name, smp.ID.String(), smp.Symbols)
	}
	wg.Wait()

	result := &SweepResult{Entries: entries, RuntimeMs: time.Since(start).Milliseconds()}
	for _, e := range entries {
		if e.Error != "" {
			result.Failed++
		} else {
			result.Tested++
		}
	}
	return result, nil
}
