// Package board declares Position and Board plus the sentinel errors for
// identifier validation. See doc.go for the package overview.
package board

import "errors"

// Sentinel errors for board identifier validation.
var (
	// ErrInvalidPosition indicates a position index outside 0..14.
	ErrInvalidPosition = errors.New("board: position out of range 0..14")

	// ErrInvalidBoard indicates a board identifier outside 0..32767.
	ErrInvalidBoard = errors.New("board: board id out of range 0..32767")

	// ErrMalformedID indicates an identifier string that is neither a
	// decimal integer nor a 15-character binary string.
	ErrMalformedID = errors.New("board: malformed board id")
)

// Board layout constants. The board shape is fixed; these are not
// parameters.
const (
	// Rows is the number of rows in the triangular layout.
	Rows = 5

	// Holes is the total number of positions (1+2+3+4+5).
	Holes = 15

	// Space is the number of distinct Board values (2^Holes). Flat
	// Space-sized tables indexed by Board replace any set or map.
	Space = 1 << Holes
)

// Position identifies one of the 15 lattice slots, 0 at the apex,
// numbered left to right, top to bottom.
type Position int

// Board is the bitmask encoding of peg occupancy: bit i set means a peg
// occupies Position i. The zero value is an empty board.
type Board uint16

// Full is the board with a peg in every hole.
const Full Board = 1<<Holes - 1

// rowOf and colOf hold the fixed triangular coordinates per position,
// computed once at init. row is 1..Rows, col is 1..row.
var (
	rowOf [Holes]int
	colOf [Holes]int
	// posAt[row-1][col-1] is the inverse lookup.
	posAt [Rows][Rows]Position
)

func init() {
	p := Position(0)
	for row := 1; row <= Rows; row++ {
		for col := 1; col <= row; col++ {
			rowOf[p] = row
			colOf[p] = col
			posAt[row-1][col-1] = p
			p++
		}
	}
}
