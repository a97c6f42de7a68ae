package solve

import "github.com/katalvlaran/trisolve/board"

// Result holds the outcome of a Discover pass: the feasible set, the
// transition edges, and (after Classify) the won/lost labels. All tables
// are flat and indexed by the board integer.
type Result struct {
	start      board.Board
	feasible   []bool         // board.Space entries
	won        []bool         // board.Space entries, valid after Classify
	edges      [][]Edge       // board.Space entries, nil for unvisited boards
	layers     [][]board.Board // indexed by peg count 0..15, ascending within a layer
	classified bool
	stats      Stats
}

// newResult allocates the flat tables for one search.
func newResult(start board.Board) *Result {
	return &Result{
		start:    start,
		feasible: make([]bool, board.Space),
		won:      make([]bool, board.Space),
		edges:    make([][]Edge, board.Space),
		layers:   make([][]board.Board, board.Holes+1),
	}
}

// Start returns the root board of the search.
func (r *Result) Start() board.Board { return r.start }

// Feasible reports whether b was reached from the start board. Values
// outside 0..32767 are simply not feasible.
func (r *Result) Feasible(b board.Board) bool {
	return b <= board.Full && r.feasible[b]
}

// Won reports whether b can be reduced to a single peg. Only meaningful
// for feasible boards after Classify; false otherwise.
func (r *Result) Won(b board.Board) bool {
	return b <= board.Full && r.won[b]
}

// Classified reports whether Classify has run.
func (r *Result) Classified() bool { return r.classified }

// Edges returns the outgoing transitions of b in move-template order.
// The returned slice is shared with the Result; callers must not modify
// it.
func (r *Result) Edges(b board.Board) []Edge {
	if b > board.Full {
		return nil
	}

	return r.edges[b]
}

// Layer returns the feasible boards holding exactly pegs pegs, in
// ascending board order. The returned slice is shared with the Result.
func (r *Result) Layer(pegs int) []board.Board {
	if pegs < 0 || pegs > board.Holes {
		return nil
	}

	return r.layers[pegs]
}

// Boards returns every feasible board in ascending order.
func (r *Result) Boards() []board.Board {
	out := make([]board.Board, 0, r.stats.Boards)
	for id := 0; id < board.Space; id++ {
		if r.feasible[id] {
			out = append(out, board.Board(id))
		}
	}

	return out
}

// Stats returns the search counters.
func (r *Result) Stats() Stats { return r.stats }
