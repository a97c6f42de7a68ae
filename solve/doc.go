// Package solve discovers every board reachable from a starting
// configuration and classifies each one as won or lost.
//
// What:
//
//   - Discover: layered breadth-first closure over the move engine,
//     recording the feasible set and every transition edge.
//   - (*Result).Classify: backward induction over the move DAG — a board
//     is won iff it has one peg, or any successor is won.
//   - Solve: Discover followed by Classify.
//
// Why:
//
//	Each move removes exactly one peg, so the transition graph is a DAG
//	layered by peg count: no cycles, no cycle guard, and classification
//	becomes a single pass per layer once the next layer is resolved.
//	The whole space fits in 32768 values, so flat tables indexed by the
//	board integer replace sets and maps outright.
//
// Concurrency:
//
//	Expansion within one peg-count layer touches disjoint edge lists, so
//	WithWorkers splits each layer across an errgroup pool with a barrier
//	between layers. Results are identical to the serial walk; new boards
//	are merged and sorted once per layer.
//
// Complexity:
//
//   - Discover: O(B·T) time, O(B + E) memory
//     (B ≤ 32768 boards, T = 36 templates, E = recorded edges).
//   - Classify: O(B + E) time, O(B) memory.
//
// Options:
//
//   - WithContext: cancellation between layers.
//   - WithProgress: per-layer counters (boards, edges, probes).
//   - WithWorkers: parallel layer expansion.
//
// Errors:
//
//   - board.ErrInvalidBoard: start value outside 0..32767.
//   - ErrOptionViolation: invalid option supplied.
package solve
