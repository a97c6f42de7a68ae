package board

import "strconv"

// Valid reports whether p is a real position index (0..14).
func (p Position) Valid() bool {
	return p >= 0 && p < Holes
}

// Row returns p's row, 1 (apex) through 5 (base).
// Calling Row on an invalid position panics; validate at the boundary.
func (p Position) Row() int { return rowOf[p] }

// Col returns p's column within its row, 1 through Row().
func (p Position) Col() int { return colOf[p] }

// String renders the position as its decimal index.
func (p Position) String() string { return strconv.Itoa(int(p)) }

// At returns the position at (row, col) and true, or 0 and false when the
// coordinate lies outside the triangle.
func At(row, col int) (Position, bool) {
	if row < 1 || row > Rows || col < 1 || col > row {
		return 0, false
	}

	return posAt[row-1][col-1], true
}

// ParsePosition validates a position index received from the boundary
// (CLI flag, stored record). Returns ErrInvalidPosition when out of range.
func ParsePosition(i int) (Position, error) {
	p := Position(i)
	if !p.Valid() {
		return 0, ErrInvalidPosition
	}

	return p, nil
}
