package memory

import (
	"testing"

	"gojoins/domain/core"
	"gojoins/domain/joins"
	"gojoins/domain/sample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSample(name string, syms ...string) *sample.Sample {
	symbols := make([]joins.Symbol, len(syms))
	for i, s := range syms {
		symbols[i] = joins.Symbol(s)
	}
	return sample.New(name, symbols, "test")
}

func TestSampleStore_AddAndRead(t *testing.T) {
	store := NewSampleStore()

	smp := newSample("esp", "ban", "che", "che")
	require.NoError(t, store.Add(smp))

	got, err := store.Read("esp")
	require.NoError(t, err)
	assert.Equal(t, smp.ID, got.ID)

	byID, err := store.ReadByID(smp.ID)
	require.NoError(t, err)
	assert.Equal(t, smp, byID)
}

func TestSampleStore_NamedReplacement(t *testing.T) {
	store := NewSampleStore()

	first := newSample("esp", "a", "b")
	second := newSample("esp", "b", "a", "b")
	require.NoError(t, store.Add(first))
	require.NoError(t, store.Add(second))

	got, err := store.Read("esp")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	// The replaced sample is fully gone, not orphaned under its ID.
	_, err = store.ReadByID(first.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Len(t, store.List(), 1)
}

func TestSampleStore_AnonymousSamplesAccumulate(t *testing.T) {
	store := NewSampleStore()

	require.NoError(t, store.Add(newSample("", "a", "b")))
	require.NoError(t, store.Add(newSample("", "b", "a")))
	require.NoError(t, store.Add(newSample("named", "a", "b")))

	listed := store.List()
	require.Len(t, listed, 3)
	assert.Equal(t, "named", listed[0].Name, "named samples list first")
}

func TestSampleStore_Unload(t *testing.T) {
	store := NewSampleStore()

	smp := newSample("esp", "a", "b")
	require.NoError(t, store.Add(smp))

	store.Unload("esp")
	_, err := store.Read("esp")
	assert.ErrorIs(t, err, core.ErrNotFound)

	// Unloading an absent name is a no-op.
	store.Unload("esp")
}

func TestSampleStore_RejectsEmpty(t *testing.T) {
	store := NewSampleStore()

	err := store.Add(sample.New("empty", nil, "test"))
	assert.ErrorIs(t, err, core.ErrEmptySample)
}
