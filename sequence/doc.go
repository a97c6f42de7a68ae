// Package sequence enumerates the solving move sequences of a
// classified configuration.
//
// What:
//
//   - Enumerator: a restartable depth-first walk over a solve.Result,
//     following only edges into won successors and emitting a Sequence
//     at every 1-peg leaf.
//   - Count: the number of solving sequences per board, memoized on
//     shared suffixes so it costs one pass over the reachable DAG.
//   - Sequence.Replay: re-plays the moves from a start board, yielding
//     every intermediate board.
//
// Why:
//
//	Solution counts are combinatorially large, so sequences are produced
//	on demand through a visitor callback instead of being materialized.
//	A walk can be re-invoked from scratch at any time; the enumerator
//	holds no consumed state.
//
// Ordering:
//
//	Emission order follows move-template order at every step, which is
//	fixed by the topology package. Repeated walks over the same Result
//	yield identical output.
//
// Errors:
//
//   - ErrNilResult, ErrNotClassified: enumerator constructed from a
//     missing or unclassified search result.
//   - ErrNilVisit: Walk invoked without a callback.
//   - ErrConfigurationNotFound: the requested board was never reached by
//     the search. Distinct from a lost-but-feasible board, which walks
//     successfully and emits nothing.
//   - ErrBrokenReplay: a replayed move is not legal on its board.
//   - Stop: returned by a callback to end a walk early without error.
package sequence
