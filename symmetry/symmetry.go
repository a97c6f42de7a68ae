package symmetry

import (
	"fmt"

	"github.com/katalvlaran/trisolve/board"
)

// Transformation identifies one element of the board's symmetry group.
type Transformation int

const (
	// Identity leaves the board unchanged.
	Identity Transformation = iota
	// Reflection mirrors across the vertical axis through the apex.
	Reflection
	// RotateCW rotates a third turn clockwise (apex to bottom-right).
	RotateCW
	// RotateCCW rotates a third turn counter-clockwise.
	RotateCCW
	// RotateCWReflect is RotateCW followed by Reflection.
	RotateCWReflect
	// RotateCCWReflect is RotateCCW followed by Reflection.
	RotateCCWReflect

	numTransformations
)

// String names the transformation the way reports display it.
func (t Transformation) String() string {
	switch t {
	case Identity:
		return "identity"
	case Reflection:
		return "reflection"
	case RotateCW:
		return "clockwise rotation"
	case RotateCCW:
		return "counter-clockwise rotation"
	case RotateCWReflect:
		return "clockwise rotation and reflection"
	case RotateCCWReflect:
		return "counter-clockwise rotation and reflection"
	default:
		return fmt.Sprintf("transformation(%d)", int(t))
	}
}

// perms[t][p] is the image of position p under transformation t.
// Built once at init from the lattice coordinates.
var perms [numTransformations][board.Holes]board.Position

func init() {
	for p := board.Position(0); p < board.Holes; p++ {
		a, b, g := triple(p)
		perms[Identity][p] = p
		perms[Reflection][p] = position(a, g, b)
		perms[RotateCW][p] = position(g, a, b)
		perms[RotateCCW][p] = position(b, g, a)
	}
	// Composites: rotate, then mirror the rotated position.
	for p := board.Position(0); p < board.Holes; p++ {
		perms[RotateCWReflect][p] = perms[Reflection][perms[RotateCW][p]]
		perms[RotateCCWReflect][p] = perms[Reflection][perms[RotateCCW][p]]
	}
}

// triple returns p's distances from the three board edges: a from the
// base, b from the left edge, g from the right edge. a+b+g = Rows-1.
func triple(p board.Position) (a, b, g int) {
	return board.Rows - p.Row(), p.Col() - 1, p.Row() - p.Col()
}

// position is the inverse of triple.
func position(a, b, g int) board.Position {
	p, ok := board.At(board.Rows-a, b+1)
	if !ok || a+b+g != board.Rows-1 {
		// Unreachable for group elements; the triple arithmetic keeps
		// every image inside the triangle.
		panic(fmt.Sprintf("symmetry: triple (%d,%d,%d) outside the board", a, b, g))
	}

	return p
}

// All returns the six transformations, Identity first. The order is
// fixed; Reduce reports the first matching transformation per duplicate.
func All() []Transformation {
	out := make([]Transformation, numTransformations)
	for t := Transformation(0); t < numTransformations; t++ {
		out[t] = t
	}

	return out
}

// Transform returns the image of b under t: a peg at position p moves
// to the transformed position.
func Transform(b board.Board, t Transformation) board.Board {
	if t < 0 || t >= numTransformations {
		return b
	}

	var out board.Board
	for p := board.Position(0); p < board.Holes; p++ {
		if b.Has(p) {
			out = out.With(perms[t][p])
		}
	}

	return out
}

// Canonical returns the smallest image of b over the whole group, the
// stable representative of b's symmetry class.
func Canonical(b board.Board) board.Board {
	min := b
	for t := Transformation(1); t < numTransformations; t++ {
		if img := Transform(b, t); img < min {
			min = img
		}
	}

	return min
}

// Link records that the duplicate From maps onto its representative To:
// Transform(From, By) == To.
type Link struct {
	From, To board.Board
	By       Transformation
}

// Reduce partitions boards into symmetry-unique classes, preserving
// input order for representatives. Each later board whose class was
// already seen yields a Link to its representative; exact repeats of a
// board are dropped silently.
func Reduce(boards []board.Board) (unique []board.Board, links []Link) {
	reps := make(map[board.Board]board.Board, len(boards))
	for _, b := range boards {
		key := Canonical(b)
		rep, seen := reps[key]
		if !seen {
			reps[key] = b
			unique = append(unique, b)

			continue
		}
		if rep == b {
			continue
		}
		for _, t := range All()[1:] {
			if Transform(b, t) == rep {
				links = append(links, Link{From: b, To: rep, By: t})

				break
			}
		}
	}

	return unique, links
}
