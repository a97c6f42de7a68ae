package solve_test

import (
	"testing"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/solve"
)

// BenchmarkDiscover_Serial measures the full forward closure of the
// apex-empty game on one goroutine.
func BenchmarkDiscover_Serial(b *testing.B) {
	start, _ := board.Start(0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve.Discover(start); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDiscover_Workers4 measures the same closure with per-layer
// parallel expansion.
func BenchmarkDiscover_Workers4(b *testing.B) {
	start, _ := board.Start(0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve.Discover(start, solve.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve measures discovery plus classification end to end.
func BenchmarkSolve(b *testing.B) {
	start, _ := board.Start(0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve.Solve(start); err != nil {
			b.Fatal(err)
		}
	}
}
