package app

import (
	"context"
	"fmt"
	"log"

	"gojoins/adapters/ingest"
	"gojoins/domain/core"
	"gojoins/domain/joins"
	"gojoins/domain/sample"
	"gojoins/ports"
)

// JoinsService orchestrates the joins engine over the sample store. The
// engine itself stays pure; this layer resolves where the sequence comes
// from and where results go.
type JoinsService struct {
	store ports.SampleStore
	repo  ports.SampleRepository // optional durable storage, may be nil
}

// NewJoinsService creates a joins service. repo may be nil when no database
// is configured.
func NewJoinsService(store ports.SampleStore, repo ports.SampleRepository) *JoinsService {
	return &JoinsService{store: store, repo: repo}
}

// TestRequest defines one joins test. Input resolution precedence: explicit
// values inside Config win, then Config.Sequence, then the stored sample
// named by SampleName.
type TestRequest struct {
	SampleName string           `json:"sample_name,omitempty"`
	Config     joins.TestConfig `json:"config"`
	Persist    bool             `json:"persist,omitempty"`
}

// RunTest resolves the request's sequence and executes the full pipeline.
func (s *JoinsService) RunTest(ctx context.Context, req TestRequest) (joins.JoinStatistics, error) {
	cfg := req.Config

	var src *sample.Sample
	if cfg.Sequence == nil && req.SampleName != "" {
		smp, err := s.lookupSample(ctx, req.SampleName)
		if err != nil {
			return joins.JoinStatistics{}, err
		}
		src = smp
		cfg.Sequence = smp.Symbols
	}

	result, err := joins.Run(cfg)
	if err != nil {
		return joins.JoinStatistics{}, err
	}

	if req.Persist && src != nil && s.repo != nil {
		if err := s.repo.SaveResult(ctx, sample.NewResult(src, result)); err != nil {
			// Persistence is best-effort bookkeeping; the statistic stands.
			log.Printf("[JoinsService] failed to persist result for %q: %v", req.SampleName, err)
		}
	}
	return result, nil
}

// AddSample stores a symbol sequence under an optional name, mirroring it to
// the durable repository when one is configured.
func (s *JoinsService) AddSample(ctx context.Context, name string, symbols []joins.Symbol, source string) (*sample.Sample, error) {
	smp := sample.New(name, symbols, source)
	if err := s.store.Add(smp); err != nil {
		return nil, err
	}
	if s.repo != nil {
		if err := s.repo.Create(ctx, smp); err != nil {
			return nil, fmt.Errorf("sample cached but not persisted: %w", err)
		}
	}
	return smp, nil
}

// AddNumericSample dichotomizes numeric data and stores the resulting
// two-symbol sequence.
func (s *JoinsService) AddNumericSample(ctx context.Context, name string, data []float64, cfg sample.DichotomizeConfig) (*sample.Sample, error) {
	symbols, err := sample.Dichotomize(data, cfg)
	if err != nil {
		return nil, err
	}
	return s.AddSample(ctx, name, symbols, "dichotomized")
}

// ImportFile loads every usable column of an Excel or CSV file as a named
// sample. Numeric columns are dichotomized with cfg; non-numeric columns are
// taken verbatim as symbols. Columns that are empty or carry more than two
// distinct non-numeric values are skipped, not fatal.
func (s *JoinsService) ImportFile(ctx context.Context, path string, cfg sample.DichotomizeConfig) ([]*sample.Sample, error) {
	data, err := ingest.NewDataReader(path).ReadColumns()
	if err != nil {
		return nil, err
	}

	var imported []*sample.Sample
	for _, header := range data.Headers {
		symbols, ok := s.columnSymbols(data.Columns[header], cfg)
		if !ok {
			log.Printf("[JoinsService] skipping column %q: not dichotomizable", header)
			continue
		}
		smp, err := s.AddSample(ctx, header, symbols, path)
		if err != nil {
			return imported, fmt.Errorf("failed to import column %q: %w", header, err)
		}
		imported = append(imported, smp)
	}
	return imported, nil
}

func (s *JoinsService) columnSymbols(values []string, cfg sample.DichotomizeConfig) ([]joins.Symbol, bool) {
	if numeric, ok := ingest.NumericColumn(values); ok {
		symbols, err := sample.Dichotomize(numeric, cfg)
		if err != nil {
			return nil, false
		}
		return symbols, true
	}

	symbols := make([]joins.Symbol, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		symbols = append(symbols, joins.Symbol(v))
	}
	if len(symbols) == 0 {
		return nil, false
	}
	if _, err := joins.CountObserved(symbols); err != nil {
		return nil, false
	}
	return symbols, true
}

// ListSamples returns everything currently cached.
func (s *JoinsService) ListSamples() []*sample.Sample {
	return s.store.List()
}

// ReadSample returns a named cached sample, falling back to the durable
// repository when the cache misses.
func (s *JoinsService) ReadSample(ctx context.Context, name string) (*sample.Sample, error) {
	return s.lookupSample(ctx, name)
}

// UnloadSample drops a named sample from the cache. Durable copies survive.
func (s *JoinsService) UnloadSample(name string) {
	s.store.Unload(name)
}

func (s *JoinsService) lookupSample(ctx context.Context, name string) (*sample.Sample, error) {
	smp, err := s.store.Read(name)
	if err == nil {
		return smp, nil
	}
	if s.repo == nil || !core.IsNotFoundError(err) {
		return nil, err
	}

	smp, repoErr := s.repo.GetByName(ctx, name)
	if repoErr != nil {
		return nil, repoErr
	}
	// Re-warm the cache for subsequent reads.
	if addErr := s.store.Add(smp); addErr != nil {
		return nil, addErr
	}
	return smp, nil
}
