package solve_test

import (
	"fmt"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/solve"
)

// ExampleSolve runs the classic game (full board with the apex hole
// empty) and reads back the classification of the root.
func ExampleSolve() {
	start, _ := board.Start(0)

	res, err := solve.Solve(start)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("feasible:", res.Feasible(start))
	fmt.Println("won:", res.Won(start))
	// Output:
	// feasible: true
	// won: true
}

// ExampleWithProgress observes the layer-by-layer search without
// altering its results. The first layer holds the lone 14-peg start; it
// expands into the two opening jumps.
func ExampleWithProgress() {
	start, _ := board.Start(0)

	var first solve.Progress
	seen := false
	_, err := solve.Discover(start, solve.WithProgress(func(p solve.Progress) {
		if !seen {
			first, seen = p, true
		}
	}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("layer %d: %d boards, %d edges, %d probes\n",
		first.Layer, first.Boards, first.Edges, first.Probes)
	// Output:
	// layer 14: 3 boards, 2 edges, 36 probes
}
