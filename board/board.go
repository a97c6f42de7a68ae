package board

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Glyphs used by Render. Fixed; the rendering contract is part of the
// CLI surface.
const (
	GlyphPeg  = "●"
	GlyphHole = "○"
)

// New validates an integer board identifier from the boundary and
// converts it to a Board. Returns ErrInvalidBoard for values outside
// 0..32767.
func New(id int) (Board, error) {
	if id < 0 || id >= Space {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBoard, id)
	}

	return Board(id), nil
}

// Start returns the canonical starting board: every hole occupied except
// empty. Returns ErrInvalidPosition when empty is out of range.
func Start(empty Position) (Board, error) {
	if !empty.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPosition, empty)
	}

	return Full &^ (1 << empty), nil
}

// Parse converts an identifier string to a Board. Two forms are accepted:
// a decimal integer ("32744") or a 15-character binary string
// ("111111111101000"); both denote the same value, with bit 0 holding
// Position 0. Returns ErrMalformedID or ErrInvalidBoard.
func Parse(s string) (Board, error) {
	base := 10
	if len(s) == Holes && strings.Trim(s, "01") == "" {
		base = 2
	}

	id, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	if id >= Space {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBoard, id)
	}

	return Board(id), nil
}

// Has reports whether a peg occupies position p.
func (b Board) Has(p Position) bool { return b&(1<<p) != 0 }

// With returns b with a peg placed at p.
func (b Board) With(p Position) Board { return b | 1<<p }

// Without returns b with position p emptied.
func (b Board) Without(p Position) Board { return b &^ (1 << p) }

// PegCount returns the number of pegs on the board.
func (b Board) PegCount() int { return bits.OnesCount16(uint16(b)) }

// Positions returns the occupied positions in ascending order.
func (b Board) Positions() []Position {
	out := make([]Position, 0, b.PegCount())
	for p := Position(0); p < Holes; p++ {
		if b.Has(p) {
			out = append(out, p)
		}
	}

	return out
}

// String renders the board as its 15-character binary identifier, most
// significant bit (Position 14) first, e.g. "111111111101000" for 32744.
func (b Board) String() string {
	return fmt.Sprintf("%015b", uint16(b))
}

// Render draws the board as a triangular glyph grid, apex row first,
// each line prefixed by indent spaces. Pegs render as GlyphPeg, empty
// holes as GlyphHole.
func (b Board) Render(indent int) string {
	var sb strings.Builder
	pad := strings.Repeat(" ", indent)
	p := Position(0)
	for row := 1; row <= Rows; row++ {
		sb.WriteString(pad)
		sb.WriteString(strings.Repeat(" ", Rows-row))
		for col := 1; col <= row; col++ {
			if col > 1 {
				sb.WriteByte(' ')
			}
			if b.Has(p) {
				sb.WriteString(GlyphPeg)
			} else {
				sb.WriteString(GlyphHole)
			}
			p++
		}
		if row < Rows {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
