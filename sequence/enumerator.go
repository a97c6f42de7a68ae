package sequence

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/solve"
)

// Enumerator walks the solving sequences of boards classified by a
// solve.Result. It is restartable: every Walk begins from scratch, and
// the only retained state is the suffix-count memo used by Count.
type Enumerator struct {
	res    *solve.Result
	counts []uint64 // memoized solving-sequence counts per board
	known  []bool   // whether counts[b] has been computed
}

// New builds an Enumerator over a classified search result.
func New(res *solve.Result) (*Enumerator, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if !res.Classified() {
		return nil, ErrNotClassified
	}

	return &Enumerator{
		res:    res,
		counts: make([]uint64, board.Space),
		known:  make([]bool, board.Space),
	}, nil
}

// Walk emits every solving sequence of b to visit, in template order at
// each step. A won 1-peg board yields exactly one empty sequence; a
// lost board yields nothing and no error. Boards outside the feasible
// set fail with ErrConfigurationNotFound. The callback may return Stop
// to end the walk early, or any other error to abort it.
func (e *Enumerator) Walk(b board.Board, visit func(Sequence) error) error {
	if visit == nil {
		return ErrNilVisit
	}
	if !e.res.Feasible(b) {
		return fmt.Errorf("%w: %d", ErrConfigurationNotFound, b)
	}
	if !e.res.Won(b) {
		return nil
	}

	path := make(Sequence, 0, b.PegCount()-1)
	if err := e.walk(b, path, visit); err != nil && !errors.Is(err, Stop) {
		return err
	}

	return nil
}

// walk is the recursive descent. The path buffer is shared down the
// call chain; each emitted sequence is copied out. Depth is bounded by
// the peg count, at most 14 frames.
func (e *Enumerator) walk(b board.Board, path Sequence, visit func(Sequence) error) error {
	if b.PegCount() == 1 {
		out := make(Sequence, len(path))
		copy(out, path)

		return visit(out)
	}

	for _, edge := range e.res.Edges(b) {
		if !e.res.Won(edge.To) {
			continue
		}
		if err := e.walk(edge.To, append(path, edge.Move), visit); err != nil {
			return err
		}
	}

	return nil
}

// Count returns the number of solving sequences of b without
// enumerating them: sub-counts from shared won successors are computed
// once and reused as suffix counts. A lost board counts zero.
func (e *Enumerator) Count(b board.Board) (uint64, error) {
	if !e.res.Feasible(b) {
		return 0, fmt.Errorf("%w: %d", ErrConfigurationNotFound, b)
	}

	return e.count(b), nil
}

// count memoizes per board; recursion depth is bounded by peg count.
func (e *Enumerator) count(b board.Board) uint64 {
	if e.known[b] {
		return e.counts[b]
	}

	var n uint64
	switch {
	case b.PegCount() == 1:
		n = 1
	case e.res.Won(b):
		for _, edge := range e.res.Edges(b) {
			if e.res.Won(edge.To) {
				n += e.count(edge.To)
			}
		}
	}
	e.known[b] = true
	e.counts[b] = n

	return n
}

// Collect gathers up to limit sequences of b (all of them when limit is
// zero or negative). Convenience wrapper over Walk.
func (e *Enumerator) Collect(b board.Board, limit int) ([]Sequence, error) {
	var out []Sequence
	err := e.Walk(b, func(s Sequence) error {
		out = append(out, s)
		if limit > 0 && len(out) >= limit {
			return Stop
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
