// Package sequence declares the Sequence type and sentinel errors. See
// doc.go for the package overview.
package sequence

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/topology"
)

// Sentinel errors for sequence enumeration.
var (
	// ErrNilResult indicates a nil search result was passed to New.
	ErrNilResult = errors.New("sequence: search result is nil")

	// ErrNotClassified indicates the search result has not been
	// classified; enumeration needs won/lost labels.
	ErrNotClassified = errors.New("sequence: search result not classified")

	// ErrNilVisit indicates Walk was invoked without a callback.
	ErrNilVisit = errors.New("sequence: visit callback is nil")

	// ErrConfigurationNotFound indicates the requested board is not part
	// of the feasible set.
	ErrConfigurationNotFound = errors.New("sequence: configuration not found")

	// ErrBrokenReplay indicates a move was not legal during Replay.
	ErrBrokenReplay = errors.New("sequence: move not legal during replay")

	// Stop may be returned from a Walk callback to end the walk early.
	// Walk swallows it and returns nil.
	Stop = errors.New("sequence: stop walk")
)

// Sequence is an ordered list of moves reducing a specific board to a
// single peg. A won 1-peg board has exactly one Sequence: the empty one.
type Sequence []topology.MoveTemplate

// Replay applies the sequence to start and returns every board along
// the way, start included. Returns ErrBrokenReplay when a move is not
// legal on its board.
func (s Sequence) Replay(start board.Board) ([]board.Board, error) {
	boards := make([]board.Board, 0, len(s)+1)
	boards = append(boards, start)

	cur := start
	for i, m := range s {
		next, ok := topology.Apply(cur, m)
		if !ok {
			return nil, fmt.Errorf("%w: move %d (%v) on %s", ErrBrokenReplay, i, m, cur)
		}
		cur = next
		boards = append(boards, cur)
	}

	return boards, nil
}

// String renders the sequence as space-separated moves.
func (s Sequence) String() string {
	if len(s) == 0 {
		return "(empty)"
	}

	out := ""
	for i, m := range s {
		if i > 0 {
			out += " "
		}
		out += m.String()
	}

	return out
}
