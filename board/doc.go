// Package board defines the value types shared by every trisolve
// component: the 15-hole triangular layout and the bitmask encoding of
// peg occupancy.
//
// What:
//
//   - Position: one of the 15 fixed lattice slots, indexed 0..14, with an
//     immutable (row, column) coordinate (row 1..5, column 1..row).
//   - Board: a 15-bit unsigned value where bit i set means a peg occupies
//     Position i. Boards are plain values; equality is integer equality.
//   - Parsing of board identifiers as decimal integers or 15-character
//     binary strings, and rendering as a triangular glyph grid.
//
// Why:
//
//   - The whole state space fits in 0..32767, so a Board doubles as a
//     stable array index and database key. No node objects, no hashing.
//   - Every other package (topology, solve, sequence, symmetry, store)
//     speaks in these two types.
//
// Layout (position indices, apex first):
//
//	        0
//	      1   2
//	    3   4   5
//	  6   7   8   9
//	10  11  12  13  14
//
// Errors:
//
//   - ErrInvalidPosition: position index outside 0..14.
//   - ErrInvalidBoard: board identifier outside 0..32767.
//   - ErrMalformedID: board identifier string that is neither a decimal
//     integer nor a 15-character binary string.
package board
