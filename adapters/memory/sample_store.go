package memory

import (
	"sort"
	"sync"

	"gojoins/domain/core"
	"gojoins/domain/sample"
	"gojoins/ports"
)

// sampleStore is an in-memory implementation of the SampleStore port. It is
// safe for concurrent readers; the joins engine only ever reads from it.
type sampleStore struct {
	mu    sync.RWMutex
	named map[string]*sample.Sample
	byID  map[core.SampleID]*sample.Sample
}

// NewSampleStore creates an empty in-memory sample store.
func NewSampleStore() ports.SampleStore {
	return &sampleStore{
		named: make(map[string]*sample.Sample),
		byID:  make(map[core.SampleID]*sample.Sample),
	}
}

// Add stores a sample, replacing any previous sample with the same name.
func (s *sampleStore) Add(smp *sample.Sample) error {
	if smp == nil || len(smp.Symbols) == 0 {
		return core.ErrEmptySample
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !smp.Anonymous() {
		if old, ok := s.named[smp.Name]; ok {
			delete(s.byID, old.ID)
		}
		s.named[smp.Name] = smp
	}
	s.byID[smp.ID] = smp
	return nil
}

// Read returns a named sample.
func (s *sampleStore) Read(name string) (*sample.Sample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	smp, ok := s.named[name]
	if !ok {
		return nil, core.NewNotFoundError("sample", name)
	}
	return smp, nil
}

// ReadByID returns any stored sample by its ID.
func (s *sampleStore) ReadByID(id core.SampleID) (*sample.Sample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	smp, ok := s.byID[id]
	if !ok {
		return nil, core.NewNotFoundError("sample", id.String())
	}
	return smp, nil
}

// List returns all stored samples, named ones first, each group sorted for
// stable output.
func (s *sampleStore) List() []*sample.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var named, anonymous []*sample.Sample
	for _, smp := range s.byID {
		if smp.Anonymous() {
			anonymous = append(anonymous, smp)
		} else {
			named = append(named, smp)
		}
	}
	sort.Slice(named, func(i, j int) bool { return named[i].Name < named[j].Name })
	sort.Slice(anonymous, func(i, j int) bool { return anonymous[i].ID < anonymous[j].ID })
	return append(named, anonymous...)
}

// Unload removes a named sample if present.
func (s *sampleStore) Unload(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if smp, ok := s.named[name]; ok {
		delete(s.byID, smp.ID)
		delete(s.named, name)
	}
}
