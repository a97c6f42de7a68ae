package store

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/sequence"
	"github.com/katalvlaran/trisolve/symmetry"
	"github.com/katalvlaran/trisolve/topology"
)

// schemaVersion guards against reading databases written by an
// incompatible layout.
const schemaVersion = 1

// Key prefixes. Single bytes keep prefix scans cheap.
const (
	prefixConfiguration  = 'c'
	prefixSequenceCount  = 'n'
	prefixSequence       = 's'
	prefixTransformation = 't'
)

var (
	keySchema = []byte("m:schema")
	keyStart  = []byte("m:start")
)

// Configuration flag bits.
const (
	flagFeasible = 1 << 0
	flagWon      = 1 << 1
)

func boardKey(prefix byte, b board.Board) []byte {
	return []byte{prefix, byte(b >> 8), byte(b)}
}

func sequenceKey(b board.Board, index uint32) []byte {
	key := make([]byte, 0, 7)
	key = append(key, boardKey(prefixSequence, b)...)

	return binary.BigEndian.AppendUint32(key, index)
}

// boardFromKey recovers the board id from bytes key[1:3].
func boardFromKey(key []byte) (board.Board, error) {
	if len(key) < 3 {
		return 0, fmt.Errorf("%w: key %x too short", ErrCorrupt, key)
	}
	id := board.Board(key[1])<<8 | board.Board(key[2])
	if id > board.Full {
		return 0, fmt.Errorf("%w: key %x holds board %d", ErrCorrupt, key, id)
	}

	return id, nil
}

func encodeFlags(c Configuration) []byte {
	var f byte
	if c.Feasible {
		f |= flagFeasible
	}
	if c.Won {
		f |= flagWon
	}

	return []byte{f}
}

func decodeFlags(b board.Board, val []byte) (Configuration, error) {
	if len(val) != 1 {
		return Configuration{}, fmt.Errorf("%w: flags of board %d", ErrCorrupt, b)
	}

	return Configuration{
		Board:    b,
		Feasible: val[0]&flagFeasible != 0,
		Won:      val[0]&flagWon != 0,
	}, nil
}

// encodeMoves packs a sequence as 3 bytes per move.
func encodeMoves(s sequence.Sequence) []byte {
	out := make([]byte, 0, 3*len(s))
	for _, m := range s {
		out = append(out, byte(m.From), byte(m.Over), byte(m.To))
	}

	return out
}

func decodeMoves(val []byte) (sequence.Sequence, error) {
	if len(val)%3 != 0 {
		return nil, fmt.Errorf("%w: sequence payload of %d bytes", ErrCorrupt, len(val))
	}

	out := make(sequence.Sequence, 0, len(val)/3)
	for i := 0; i < len(val); i += 3 {
		m := topology.MoveTemplate{
			From: board.Position(val[i]),
			Over: board.Position(val[i+1]),
			To:   board.Position(val[i+2]),
		}
		if !m.From.Valid() || !m.Over.Valid() || !m.To.Valid() {
			return nil, fmt.Errorf("%w: move %v", ErrCorrupt, m)
		}
		out = append(out, m)
	}

	return out, nil
}

func encodeLink(l symmetry.Link) []byte {
	return []byte{byte(l.To >> 8), byte(l.To), byte(l.By)}
}

func decodeLink(from board.Board, val []byte) (symmetry.Link, error) {
	if len(val) != 3 {
		return symmetry.Link{}, fmt.Errorf("%w: transformation of board %d", ErrCorrupt, from)
	}
	to := board.Board(val[0])<<8 | board.Board(val[1])
	if to > board.Full {
		return symmetry.Link{}, fmt.Errorf("%w: transformation target %d", ErrCorrupt, to)
	}

	return symmetry.Link{From: from, To: to, By: symmetry.Transformation(val[2])}, nil
}

func encodeBoard(b board.Board) []byte {
	return []byte{byte(b >> 8), byte(b)}
}

func decodeBoard(val []byte) (board.Board, error) {
	if len(val) != 2 {
		return 0, fmt.Errorf("%w: board value of %d bytes", ErrCorrupt, len(val))
	}
	b := board.Board(val[0])<<8 | board.Board(val[1])
	if b > board.Full {
		return 0, fmt.Errorf("%w: board %d out of range", ErrCorrupt, b)
	}

	return b, nil
}
