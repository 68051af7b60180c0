package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"gojoins/domain/core"
	"gojoins/domain/joins"
	"gojoins/domain/sample"
	"gojoins/ports"

	"github.com/jmoiron/sqlx"
)

// sampleRepository implements the SampleRepository interface
type sampleRepository struct {
	db *sqlx.DB
}

// NewSampleRepository creates a new sample repository
func NewSampleRepository(db *sqlx.DB) ports.SampleRepository {
	return &sampleRepository{db: db}
}

// Migrate creates the repository tables if they do not exist.
func Migrate(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS samples (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		symbols JSONB NOT NULL,
		source TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS samples_name_idx ON samples (name) WHERE name <> '';

	CREATE TABLE IF NOT EXISTS joins_results (
		id TEXT PRIMARY KEY,
		sample_id TEXT NOT NULL REFERENCES samples(id) ON DELETE CASCADE,
		sample_name TEXT NOT NULL DEFAULT '',
		stats JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS joins_results_sample_idx ON joins_results (sample_id);`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate joins schema: %w", err)
	}
	return nil
}

// Create inserts a new sample into the database
func (r *sampleRepository) Create(ctx context.Context, s *sample.Sample) error {
	symbolsJSON, err := json.Marshal(s.Symbols)
	if err != nil {
		return fmt.Errorf("failed to marshal symbols: %w", err)
	}

	query := `INSERT INTO samples (id, name, symbols, source, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET name = $2, symbols = $3, source = $4`

	_, err = r.db.ExecContext(ctx, query, s.ID, s.Name, symbolsJSON, s.Source, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sample: %w", err)
	}
	return nil
}

// GetByName retrieves a named sample
func (r *sampleRepository) GetByName(ctx context.Context, name string) (*sample.Sample, error) {
	query := `SELECT id, name, symbols, source, created_at FROM samples WHERE name = $1`

	var s sample.Sample
	var symbolsJSON []byte

	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&s.ID, &s.Name, &symbolsJSON, &s.Source, &s.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewNotFoundError("sample", name)
		}
		return nil, fmt.Errorf("failed to get sample: %w", err)
	}

	if err := json.Unmarshal(symbolsJSON, &s.Symbols); err != nil {
		return nil, fmt.Errorf("failed to unmarshal symbols: %w", err)
	}
	return &s, nil
}

// List retrieves all persisted samples, named first
func (r *sampleRepository) List(ctx context.Context) ([]*sample.Sample, error) {
	query := `SELECT id, name, symbols, source, created_at FROM samples
		ORDER BY name = '' ASC, name ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}
	defer rows.Close()

	var samples []*sample.Sample
	for rows.Next() {
		var s sample.Sample
		var symbolsJSON []byte
		if err := rows.Scan(&s.ID, &s.Name, &symbolsJSON, &s.Source, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		if err := json.Unmarshal(symbolsJSON, &s.Symbols); err != nil {
			return nil, fmt.Errorf("failed to unmarshal symbols: %w", err)
		}
		samples = append(samples, &s)
	}
	return samples, rows.Err()
}

// Delete removes a sample and its results
func (r *sampleRepository) Delete(ctx context.Context, id core.SampleID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM samples WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sample: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.NewNotFoundError("sample", id.String())
	}
	return nil
}

// SaveResult persists a computed joins statistic snapshot
func (r *sampleRepository) SaveResult(ctx context.Context, result *sample.Result) error {
	statsJSON, err := json.Marshal(result.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	query := `INSERT INTO joins_results (id, sample_id, sample_name, stats, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = r.db.ExecContext(ctx, query, result.ID, result.SampleID, result.SampleName, statsJSON, result.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// ListResults retrieves all results computed for one sample
func (r *sampleRepository) ListResults(ctx context.Context, sampleID core.SampleID) ([]*sample.Result, error) {
	query := `SELECT id, sample_id, sample_name, stats, created_at
		FROM joins_results WHERE sample_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, sampleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []*sample.Result
	for rows.Next() {
		var res sample.Result
		var statsJSON []byte
		if err := rows.Scan(&res.ID, &res.SampleID, &res.SampleName, &statsJSON, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		var stats joins.JoinStatistics
		if err := json.Unmarshal(statsJSON, &stats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
		}
		res.Stats = stats
		results = append(results, &res)
	}
	return results, rows.Err()
}
