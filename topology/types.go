// Package topology declares the MoveTemplate type and the fixed lattice
// axes. See doc.go for the package overview.
package topology

import (
	"fmt"

	"github.com/katalvlaran/trisolve/board"
)

// Axis identifies one of the three bidirectional lattice axes.
type Axis int

const (
	// AxisHorizontal steps within a row: (Δrow 0, Δcol ±1).
	AxisHorizontal Axis = iota
	// AxisLeft steps along the left board edge: (Δrow ±1, Δcol 0).
	AxisLeft
	// AxisRight steps along the right board edge: (Δrow ±1, Δcol ±1).
	AxisRight

	numAxes
)

// axisDelta holds the (Δrow, Δcol) of one positive step per axis.
// Negative steps are the same deltas negated.
var axisDelta = [numAxes][2]int{
	AxisHorizontal: {0, 1},
	AxisLeft:       {1, 0},
	AxisRight:      {1, 1},
}

// String names the axis for diagnostics.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisLeft:
		return "left"
	case AxisRight:
		return "right"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// MoveTemplate is one legal jump pattern: a peg at From jumps the peg at
// Over and lands on To. From, Over and To are colinear along one axis,
// with Over the middle position. Templates are values; the full set is
// fixed at init and symmetric (for every (a,b,c) there is (c,b,a)).
type MoveTemplate struct {
	From, Over, To board.Position
}

// String renders the template as "from>over>to".
func (t MoveTemplate) String() string {
	return fmt.Sprintf("%d>%d>%d", t.From, t.Over, t.To)
}
