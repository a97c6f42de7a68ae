// Package store declares the record types, the Store interface, and the
// sentinel errors. See doc.go for the package overview.
package store

import (
	"context"
	"errors"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/sequence"
	"github.com/katalvlaran/trisolve/symmetry"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates no record exists under the requested key.
	ErrNotFound = errors.New("store: record not found")

	// ErrSchema indicates the database was initialized by an
	// incompatible schema version.
	ErrSchema = errors.New("store: unsupported schema version")

	// ErrCorrupt indicates a stored record failed to decode.
	ErrCorrupt = errors.New("store: corrupt record")
)

// Configuration is the persisted classification of one board.
type Configuration struct {
	Board    board.Board
	Feasible bool
	Won      bool
}

// Store is the persistence collaborator consumed by the CLI. All
// methods honor context cancellation at entry; engine failures are
// wrapped and propagated unmodified in meaning.
type Store interface {
	// Init prepares the schema. Idempotent: re-initializing an existing
	// database of the same version is a no-op.
	Init(ctx context.Context) error

	// Drop removes all records.
	Drop(ctx context.Context) error

	// PutConfiguration writes a configuration at most once: a board that
	// already has a record is left untouched.
	PutConfiguration(ctx context.Context, c Configuration) error

	// GetConfiguration reads one configuration or ErrNotFound.
	GetConfiguration(ctx context.Context, b board.Board) (Configuration, error)

	// Configurations returns every stored configuration in ascending
	// board order.
	Configurations(ctx context.Context) ([]Configuration, error)

	// PutSequence appends one solving sequence for b; indices are
	// assigned in insertion order starting at 0.
	PutSequence(ctx context.Context, b board.Board, s sequence.Sequence) error

	// SequenceCount returns the number of stored sequences for b (zero
	// when none, not an error).
	SequenceCount(ctx context.Context, b board.Board) (int, error)

	// GetSequence reads the sequence stored at index for b, or
	// ErrNotFound.
	GetSequence(ctx context.Context, b board.Board, index int) (sequence.Sequence, error)

	// ListSequences returns the stored sequences of b in index order.
	ListSequences(ctx context.Context, b board.Board) ([]sequence.Sequence, error)

	// PutTransformation records a symmetry link from a duplicate board
	// to its class representative.
	PutTransformation(ctx context.Context, l symmetry.Link) error

	// TransformationOf returns the link whose From is b, or ErrNotFound
	// when b is itself a representative.
	TransformationOf(ctx context.Context, b board.Board) (symmetry.Link, error)

	// SetStart records the search root of the persisted results.
	SetStart(ctx context.Context, b board.Board) error

	// Start returns the recorded search root, or ErrNotFound before any
	// solve was persisted.
	Start(ctx context.Context) (board.Board, error)

	// Close releases the underlying engine.
	Close() error
}
