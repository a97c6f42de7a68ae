package solve

import "github.com/katalvlaran/trisolve/board"

// Classify labels every feasible board as won or lost by backward
// induction over the move DAG. The base layer is the 1-peg boards (won
// by definition); each layer above is resolved from the layer below, so
// "successors are already classified" is an explicit loop precondition
// rather than a call-stack property. A feasible board with pegs and no
// won successor (including a dead end with no moves at all) is lost.
//
// Classify is idempotent; repeated calls are no-ops.
func (r *Result) Classify() {
	if r.classified {
		return
	}

	for _, b := range r.layers[1] {
		r.won[b] = true
	}
	for pegs := 2; pegs <= board.Holes; pegs++ {
		for _, b := range r.layers[pegs] {
			for _, e := range r.edges[b] {
				if r.won[e.To] {
					r.won[b] = true

					break
				}
			}
		}
	}
	r.classified = true
}
