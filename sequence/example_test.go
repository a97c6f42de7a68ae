package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/sequence"
	"github.com/katalvlaran/trisolve/solve"
)

// ExampleEnumerator_Walk enumerates the solutions of a tiny position:
// pegs at 1 and 3 solve with the single jump 1>3>6.
func ExampleEnumerator_Walk() {
	b := board.Board(0).With(1).With(3)

	res, err := solve.Solve(b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	enum, err := sequence.New(res)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	err = enum.Walk(b, func(s sequence.Sequence) error {
		fmt.Println(s)

		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 1>3>6
}

// ExampleEnumerator_Count counts solutions without materializing them.
func ExampleEnumerator_Count() {
	b := board.Board(0).With(0).With(10) // two isolated pegs, no moves

	res, _ := solve.Solve(b)
	enum, _ := sequence.New(res)

	n, err := enum.Count(b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("solutions:", n)
	// Output:
	// solutions: 0
}
