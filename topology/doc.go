// Package topology derives the legal-move structure of the 15-hole
// triangular board and applies moves to board values.
//
// What:
//
//   - Templates: the complete, order-stable set of 36 jump patterns
//     (from, over, to), generated once from the three lattice axes.
//   - Apply: the move engine — a pure function mapping (Board, template)
//     to the successor Board, or reporting "not legal" without error.
//   - Moves: the legal moves of a given board, in template order.
//
// Why:
//
//   - Every downstream pass (reachability, classification, enumeration)
//     is a walk over this move structure; its determinism is what makes
//     board identifiers stable across runs and databases.
//
// Axes:
//
//	A triangular lattice has six neighbor directions that collapse to
//	three bidirectional axes in (row, col) deltas:
//
//	  horizontal  (Δrow  0, Δcol ±1)
//	  left edge   (Δrow ±1, Δcol  0)
//	  right edge  (Δrow ±1, Δcol ±1)
//
//	A template exists where two same-direction steps along one axis stay
//	inside the triangle; the symmetric reverse template always exists too.
//
// Complexity: all of it is O(1) after init; Templates is 36 entries,
// Moves scans them against a 15-bit mask.
package topology
