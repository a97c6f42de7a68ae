package topology

import "github.com/katalvlaran/trisolve/board"

// Apply is the move engine. It returns the board that results from
// playing t on b and true, or b unchanged and false when the move is not
// legal (From or Over empty, or To occupied). An illegal move is a
// normal outcome, not an error; callers branch on ok.
func Apply(b board.Board, t MoveTemplate) (board.Board, bool) {
	if !b.Has(t.From) || !b.Has(t.Over) || b.Has(t.To) {
		return b, false
	}

	return b.Without(t.From).Without(t.Over).With(t.To), true
}

// Moves returns the legal moves of b in template order.
func Moves(b board.Board) []MoveTemplate {
	var out []MoveTemplate
	for _, t := range templates {
		if _, ok := Apply(b, t); ok {
			out = append(out, t)
		}
	}

	return out
}
