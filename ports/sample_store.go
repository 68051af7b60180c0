package ports

import (
	"context"

	"gojoins/domain/core"
	"gojoins/domain/sample"
)

// SampleStore defines the interface for the in-process sample cache the
// engine reads from. The store owns sequence lifecycle; the engine never
// mutates what it reads.
type SampleStore interface {
	// Add stores a sample. Named samples replace any previous sample of the
	// same name; anonymous samples accumulate.
	Add(s *sample.Sample) error
	// Read returns a named sample, or ErrSampleNotFound.
	Read(name string) (*sample.Sample, error)
	// ReadByID returns a sample by ID, named or anonymous.
	ReadByID(id core.SampleID) (*sample.Sample, error)
	// List returns all stored samples, named first.
	List() []*sample.Sample
	// Unload removes a named sample. Removing an absent name is not an error.
	Unload(name string)
}

// SampleRepository defines the interface for durable sample persistence.
type SampleRepository interface {
	Create(ctx context.Context, s *sample.Sample) error
	GetByName(ctx context.Context, name string) (*sample.Sample, error)
	List(ctx context.Context) ([]*sample.Sample, error)
	Delete(ctx context.Context, id core.SampleID) error

	SaveResult(ctx context.Context, r *sample.Result) error
	ListResults(ctx context.Context, sampleID core.SampleID) ([]*sample.Result, error)
}
