package store

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/sequence"
	"github.com/katalvlaran/trisolve/symmetry"
)

// Config holds settings for a Badger-backed store.
type Config struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM, no files on disk. For tests.
	InMemory bool

	// SyncWrites forces fsync per write batch.
	SyncWrites bool

	// Logger receives the engine's own log output. Nil disables it;
	// engine chatter is rarely useful at the CLI.
	Logger *slog.Logger
}

// DefaultConfig returns durable settings for a database at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns settings for an in-memory test store.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// Badger implements Store on embedded BadgerDB.
type Badger struct {
	db *badger.DB
}

var _ Store = (*Badger)(nil)

// Open opens (creating if needed) the database described by cfg.
func Open(cfg Config) (*Badger, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites)
	if cfg.InMemory {
		opts = opts.WithDir("").WithValueDir("")
	}
	if cfg.Logger != nil {
		opts = opts.WithLogger(slogAdapter{cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}

	return &Badger{db: db}, nil
}

// Close releases the engine.
func (s *Badger) Close() error { return s.db.Close() }

// Init writes the schema marker, verifying compatibility when one is
// already present. Idempotent.
func (s *Badger) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(keySchema)
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
			return txn.Set(keySchema, []byte{schemaVersion})
		case err != nil:
			return fmt.Errorf("store: read schema: %w", err)
		}

		val, err := item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("store: read schema: %w", err)
		}
		if len(val) != 1 || val[0] != schemaVersion {
			return fmt.Errorf("%w: got %v, want %d", ErrSchema, val, schemaVersion)
		}

		return nil
	})
}

// Drop removes every record. The next use requires Init again.
func (s *Badger) Drop(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("store: drop: %w", err)
	}

	return nil
}

// PutConfiguration stores c unless a record for the board already
// exists; configurations are immutable, so the first write wins and
// re-runs are no-ops.
func (s *Badger) PutConfiguration(ctx context.Context, c Configuration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := boardKey(prefixConfiguration, c.Board)

	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch {
		case err == nil:
			return nil // at most one write per board
		case !errors.Is(err, badger.ErrKeyNotFound):
			return fmt.Errorf("store: read configuration %d: %w", c.Board, err)
		}

		return txn.Set(key, encodeFlags(c))
	})
}

// GetConfiguration reads the record of b.
func (s *Badger) GetConfiguration(ctx context.Context, b board.Board) (Configuration, error) {
	if err := ctx.Err(); err != nil {
		return Configuration{}, err
	}

	var out Configuration
	err := s.db.View(func(txn *badger.Txn) error {
		val, err := getValue(txn, boardKey(prefixConfiguration, b))
		if err != nil {
			return err
		}
		out, err = decodeFlags(b, val)

		return err
	})
	if err != nil {
		return Configuration{}, wrapNotFound(err, "configuration %d", b)
	}

	return out, nil
}

// Configurations scans every stored record in ascending board order
// (big-endian keys sort numerically).
func (s *Badger) Configurations(ctx context.Context) ([]Configuration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []Configuration
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{prefixConfiguration}
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			b, err := boardFromKey(item.Key())
			if err != nil {
				return err
			}
			val, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("store: read configuration %d: %w", b, err)
			}
			c, err := decodeFlags(b, val)
			if err != nil {
				return err
			}
			out = append(out, c)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// PutSequence appends s under the next free index for b.
func (s *Badger) PutSequence(ctx context.Context, b board.Board, seq sequence.Sequence) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	countKey := boardKey(prefixSequenceCount, b)

	return s.db.Update(func(txn *badger.Txn) error {
		count, err := readCount(txn, countKey)
		if err != nil {
			return err
		}
		if err := txn.Set(sequenceKey(b, count), encodeMoves(seq)); err != nil {
			return fmt.Errorf("store: write sequence %d/%d: %w", b, count, err)
		}

		return txn.Set(countKey, binary.BigEndian.AppendUint32(nil, count+1))
	})
}

// SequenceCount returns how many sequences are stored for b.
func (s *Badger) SequenceCount(ctx context.Context, b board.Board) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var count uint32
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		count, err = readCount(txn, boardKey(prefixSequenceCount, b))

		return err
	})
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// GetSequence reads the sequence at index for b.
func (s *Badger) GetSequence(ctx context.Context, b board.Board, index int) (sequence.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: sequence %d/%d", ErrNotFound, b, index)
	}

	var out sequence.Sequence
	err := s.db.View(func(txn *badger.Txn) error {
		val, err := getValue(txn, sequenceKey(b, uint32(index)))
		if err != nil {
			return err
		}
		out, err = decodeMoves(val)

		return err
	})
	if err != nil {
		return nil, wrapNotFound(err, "sequence %d/%d", b, index)
	}

	return out, nil
}

// ListSequences returns the sequences of b in index order.
func (s *Badger) ListSequences(ctx context.Context, b board.Board) ([]sequence.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []sequence.Sequence
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = boardKey(prefixSequence, b)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("store: read sequence of %d: %w", b, err)
			}
			seq, err := decodeMoves(val)
			if err != nil {
				return err
			}
			out = append(out, seq)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// PutTransformation records the symmetry link of a duplicate board.
func (s *Badger) PutTransformation(ctx context.Context, l symmetry.Link) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(boardKey(prefixTransformation, l.From), encodeLink(l))
	})
}

// TransformationOf returns the link whose From is b.
func (s *Badger) TransformationOf(ctx context.Context, b board.Board) (symmetry.Link, error) {
	if err := ctx.Err(); err != nil {
		return symmetry.Link{}, err
	}

	var out symmetry.Link
	err := s.db.View(func(txn *badger.Txn) error {
		val, err := getValue(txn, boardKey(prefixTransformation, b))
		if err != nil {
			return err
		}
		out, err = decodeLink(b, val)

		return err
	})
	if err != nil {
		return symmetry.Link{}, wrapNotFound(err, "transformation of %d", b)
	}

	return out, nil
}

// SetStart records the search root.
func (s *Badger) SetStart(ctx context.Context, b board.Board) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyStart, encodeBoard(b))
	})
}

// Start returns the recorded search root.
func (s *Badger) Start(ctx context.Context) (board.Board, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var out board.Board
	err := s.db.View(func(txn *badger.Txn) error {
		val, err := getValue(txn, keyStart)
		if err != nil {
			return err
		}
		out, err = decodeBoard(val)

		return err
	})
	if err != nil {
		return 0, wrapNotFound(err, "start board")
	}

	return out, nil
}

// getValue reads one key's value inside txn.
func getValue(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if err != nil {
		return nil, err
	}

	return item.ValueCopy(nil)
}

// readCount reads a 4-byte counter, zero when absent.
func readCount(txn *badger.Txn, key []byte) (uint32, error) {
	val, err := getValue(txn, key)
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("store: read counter: %w", err)
	case len(val) != 4:
		return 0, fmt.Errorf("%w: counter of %d bytes", ErrCorrupt, len(val))
	}

	return binary.BigEndian.Uint32(val), nil
}

// wrapNotFound translates the engine's missing-key error into
// ErrNotFound and wraps everything else untouched.
func wrapNotFound(err error, format string, args ...any) error {
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
	}

	return err
}

// slogAdapter bridges slog to the engine's printf-style logger.
type slogAdapter struct{ log *slog.Logger }

func (a slogAdapter) Errorf(format string, args ...interface{}) {
	a.log.Error(fmt.Sprintf(format, args...))
}

func (a slogAdapter) Warningf(format string, args ...interface{}) {
	a.log.Warn(fmt.Sprintf(format, args...))
}

func (a slogAdapter) Infof(format string, args ...interface{}) {
	a.log.Info(fmt.Sprintf(format, args...))
}

func (a slogAdapter) Debugf(format string, args ...interface{}) {
	a.log.Debug(fmt.Sprintf(format, args...))
}
