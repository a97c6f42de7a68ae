package topology

import "github.com/katalvlaran/trisolve/board"

// templates is the precomputed template set. Built once at init; order
// is fixed (position ascending, axis order, positive step first) and
// must never change: sequence output order and test fixtures depend
// on it.
var templates []MoveTemplate

func init() {
	templates = buildTemplates()
}

// buildTemplates enumerates every two-step line inside the triangle:
// for each position, each axis and each direction, the template
// (p, p+d, p+2d) is valid when both steps stay on the board.
func buildTemplates() []MoveTemplate {
	out := make([]MoveTemplate, 0, 36)
	for p := board.Position(0); p < board.Holes; p++ {
		for axis := Axis(0); axis < numAxes; axis++ {
			for _, sign := range [2]int{1, -1} {
				dr := axisDelta[axis][0] * sign
				dc := axisDelta[axis][1] * sign

				over, ok := board.At(p.Row()+dr, p.Col()+dc)
				if !ok {
					continue
				}
				to, ok := board.At(p.Row()+2*dr, p.Col()+2*dc)
				if !ok {
					continue
				}
				out = append(out, MoveTemplate{From: p, Over: over, To: to})
			}
		}
	}

	return out
}

// Templates returns the full template set in its fixed order. The
// returned slice is a copy; callers may reorder it freely.
func Templates() []MoveTemplate {
	out := make([]MoveTemplate, len(templates))
	copy(out, templates)

	return out
}

// TemplateCount is the size of the template set (36 for the 5-row
// board). Exposed for capacity hints.
func TemplateCount() int { return len(templates) }
