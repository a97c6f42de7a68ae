// File: topology/topology_test.go
package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/topology"
)

// TestTemplates_Count verifies the 5-row board yields exactly 36 jump
// patterns (18 lines, each usable in both directions).
func TestTemplates_Count(t *testing.T) {
	assert.Len(t, topology.Templates(), 36)
	assert.Equal(t, 36, topology.TemplateCount())
}

// TestTemplates_Deterministic re-reads the template set and requires an
// identical, order-stable result. Board identifiers and stored sequences
// depend on this ordering.
func TestTemplates_Deterministic(t *testing.T) {
	first := topology.Templates()
	second := topology.Templates()
	require.Equal(t, first, second)

	// The returned slice is a copy; mutating it must not leak back.
	first[0], first[1] = first[1], first[0]
	assert.Equal(t, second, topology.Templates())
}

// TestTemplates_Geometry checks every template is a straight two-step
// line with Over in the middle, fully inside the triangle.
func TestTemplates_Geometry(t *testing.T) {
	for _, tpl := range topology.Templates() {
		require.True(t, tpl.From.Valid() && tpl.Over.Valid() && tpl.To.Valid(), "template %v", tpl)

		dr := tpl.Over.Row() - tpl.From.Row()
		dc := tpl.Over.Col() - tpl.From.Col()
		assert.Equal(t, tpl.From.Row()+2*dr, tpl.To.Row(), "template %v row", tpl)
		assert.Equal(t, tpl.From.Col()+2*dc, tpl.To.Col(), "template %v col", tpl)
	}
}

// TestTemplates_Symmetric requires the reverse of every template to be
// present in the set.
func TestTemplates_Symmetric(t *testing.T) {
	set := make(map[topology.MoveTemplate]bool)
	for _, tpl := range topology.Templates() {
		set[tpl] = true
	}
	for tpl := range set {
		rev := topology.MoveTemplate{From: tpl.To, Over: tpl.Over, To: tpl.From}
		assert.True(t, set[rev], "missing reverse of %v", tpl)
	}
}

// TestApply_Legality exercises the three rejection conditions and the
// result of a legal jump.
func TestApply_Legality(t *testing.T) {
	// Apex empty, everything else occupied: 3 jumps 1 and lands on 0.
	start, err := board.Start(0)
	require.NoError(t, err)
	tpl := topology.MoveTemplate{From: 3, Over: 1, To: 0}

	next, ok := topology.Apply(start, tpl)
	require.True(t, ok)
	assert.True(t, next.Has(0))
	assert.False(t, next.Has(1))
	assert.False(t, next.Has(3))
	assert.Equal(t, start.PegCount()-1, next.PegCount())
	// Pure function: the input board is unchanged.
	assert.False(t, start.Has(0))

	// To occupied.
	_, ok = topology.Apply(board.Full, tpl)
	assert.False(t, ok)
	// From empty.
	_, ok = topology.Apply(start.Without(3), tpl)
	assert.False(t, ok)
	// Over empty.
	_, ok = topology.Apply(start.Without(1), tpl)
	assert.False(t, ok)
}

// TestApply_Illegal returns the board unchanged alongside ok=false.
func TestApply_Illegal(t *testing.T) {
	tpl := topology.MoveTemplate{From: 3, Over: 1, To: 0}
	got, ok := topology.Apply(board.Full, tpl)
	assert.False(t, ok)
	assert.Equal(t, board.Full, got)
}

// TestMoves_ApexEmpty pins the two legal openings when the apex hole is
// empty: jumps along the two board edges into position 0.
func TestMoves_ApexEmpty(t *testing.T) {
	start, err := board.Start(0)
	require.NoError(t, err)

	moves := topology.Moves(start)
	require.Len(t, moves, 2)
	for _, m := range moves {
		assert.Equal(t, board.Position(0), m.To)
	}
	assert.ElementsMatch(t, []topology.MoveTemplate{
		{From: 3, Over: 1, To: 0},
		{From: 5, Over: 2, To: 0},
	}, moves)
}

// TestMoves_Terminal boards with no legal move yield an empty list.
func TestMoves_Terminal(t *testing.T) {
	assert.Empty(t, topology.Moves(board.Full))
	assert.Empty(t, topology.Moves(board.Board(0)))
	// A single peg anywhere has nothing to jump.
	assert.Empty(t, topology.Moves(board.Board(1)))
}

// TestMoves_PegCountDecreases confirms every legal move removes exactly
// one peg, the structural property that makes the move graph acyclic.
func TestMoves_PegCountDecreases(t *testing.T) {
	b, err := board.Start(4)
	require.NoError(t, err)
	for _, m := range topology.Moves(b) {
		next, ok := topology.Apply(b, m)
		require.True(t, ok)
		assert.Equal(t, b.PegCount()-1, next.PegCount(), "move %v", m)
	}
}
