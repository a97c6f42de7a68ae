// File: store/badger_test.go
package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/sequence"
	"github.com/katalvlaran/trisolve/store"
	"github.com/katalvlaran/trisolve/symmetry"
)

// open returns an initialized in-memory store, closed with the test.
func open(t *testing.T) *store.Badger {
	t.Helper()
	s, err := store.Open(store.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Init(context.Background()))

	return s
}

// TestInit_Idempotent: re-initializing the same database is a no-op.
func TestInit_Idempotent(t *testing.T) {
	s := open(t)
	require.NoError(t, s.Init(context.Background()))
	require.NoError(t, s.Init(context.Background()))
}

// TestConfiguration_RoundTrip writes and reads one record.
func TestConfiguration_RoundTrip(t *testing.T) {
	s := open(t)
	ctx := context.Background()

	want := store.Configuration{Board: 32744, Feasible: true, Won: false}
	require.NoError(t, s.PutConfiguration(ctx, want))

	got, err := s.GetConfiguration(ctx, 32744)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = s.GetConfiguration(ctx, 7)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// TestConfiguration_AtMostOnce: a second write never alters the stored
// record, matching the immutability of classifications.
func TestConfiguration_AtMostOnce(t *testing.T) {
	s := open(t)
	ctx := context.Background()

	first := store.Configuration{Board: 10, Feasible: true, Won: true}
	require.NoError(t, s.PutConfiguration(ctx, first))
	require.NoError(t, s.PutConfiguration(ctx, first)) // identical re-put
	require.NoError(t, s.PutConfiguration(ctx, store.Configuration{Board: 10, Feasible: true, Won: false}))

	got, err := s.GetConfiguration(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	all, err := s.Configurations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// TestConfigurations_Order: the scan returns ascending board order
// regardless of insertion order.
func TestConfigurations_Order(t *testing.T) {
	s := open(t)
	ctx := context.Background()

	for _, id := range []board.Board{300, 5, 32767, 1024} {
		require.NoError(t, s.PutConfiguration(ctx, store.Configuration{Board: id, Feasible: true}))
	}

	all, err := s.Configurations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []board.Board{5, 300, 1024, 32767},
		[]board.Board{all[0].Board, all[1].Board, all[2].Board, all[3].Board})
}

// TestSequences covers append order, count, indexed reads and listing.
func TestSequences(t *testing.T) {
	s := open(t)
	ctx := context.Background()
	b := board.Board(10)

	first := sequence.Sequence{{From: 1, Over: 3, To: 6}}
	second := sequence.Sequence{{From: 3, Over: 1, To: 0}, {From: 5, Over: 2, To: 0}}
	require.NoError(t, s.PutSequence(ctx, b, first))
	require.NoError(t, s.PutSequence(ctx, b, second))

	n, err := s.SequenceCount(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := s.GetSequence(ctx, b, 1)
	require.NoError(t, err)
	assert.Equal(t, second, got)
	_, err = s.GetSequence(ctx, b, 2)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetSequence(ctx, b, -1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	all, err := s.ListSequences(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, []sequence.Sequence{first, second}, all)

	// Other boards are untouched.
	n, err = s.SequenceCount(ctx, 11)
	require.NoError(t, err)
	assert.Zero(t, n)
	empty, err := s.ListSequences(ctx, 11)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestSequences_EmptySequence: the zero-length solution of a 1-peg board
// stores and loads as an empty move list.
func TestSequences_EmptySequence(t *testing.T) {
	s := open(t)
	ctx := context.Background()

	require.NoError(t, s.PutSequence(ctx, 1, sequence.Sequence{}))
	got, err := s.GetSequence(ctx, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestTransformations links duplicates to their representatives.
func TestTransformations(t *testing.T) {
	s := open(t)
	ctx := context.Background()

	s0, err := board.Start(0)
	require.NoError(t, err)
	s10, err := board.Start(10)
	require.NoError(t, err)

	link := symmetry.Link{From: s10, To: s0, By: symmetry.RotateCW}
	require.NoError(t, s.PutTransformation(ctx, link))

	got, err := s.TransformationOf(ctx, s10)
	require.NoError(t, err)
	assert.Equal(t, link, got)

	_, err = s.TransformationOf(ctx, s0)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// TestStartRecord persists the search root.
func TestStartRecord(t *testing.T) {
	s := open(t)
	ctx := context.Background()

	_, err := s.Start(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)

	want, err := board.Start(4)
	require.NoError(t, err)
	require.NoError(t, s.SetStart(ctx, want))

	got, err := s.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestDrop empties the database; Init restores a usable schema.
func TestDrop(t *testing.T) {
	s := open(t)
	ctx := context.Background()

	require.NoError(t, s.PutConfiguration(ctx, store.Configuration{Board: 10, Feasible: true}))
	require.NoError(t, s.Drop(ctx))

	_, err := s.GetConfiguration(ctx, 10)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.PutConfiguration(ctx, store.Configuration{Board: 10, Feasible: true}))
}

// TestContextCancellation: every method checks its context at entry.
func TestContextCancellation(t *testing.T) {
	s := open(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Init(ctx), context.Canceled)
	assert.ErrorIs(t, s.PutConfiguration(ctx, store.Configuration{}), context.Canceled)
	_, err := s.GetConfiguration(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.ListSequences(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
