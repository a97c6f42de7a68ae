// Package symmetry models the dihedral symmetry group of the triangular
// board and reduces sets of configurations to symmetry-unique classes.
//
// What:
//
//   - Transformation: one of the six board symmetries — identity, the
//     mirror across the vertical axis, both rotations, and the two
//     rotation+mirror composites.
//   - Transform: applies a transformation to a board bitmask.
//   - Canonical: the minimum image of a board over the whole group, a
//     stable class representative.
//   - Reduce: partitions boards into unique classes, linking every
//     duplicate to its representative with the transformation relating
//     them.
//
// Why:
//
//	Rotated or mirrored configurations play identically; analysis and
//	reporting shrink roughly sixfold when only one representative per
//	class is kept.
//
// Construction:
//
//	Position permutations are generated from the lattice coordinates via
//	the edge-distance triple (a, b, g) with a+b+g = 4: rotation cycles
//	the triple, the mirror swaps the left and right distances. Nothing
//	is hardcoded per position; the tables are rebuilt deterministically
//	at init.
package symmetry
