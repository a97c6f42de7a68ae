package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/solve"
	"github.com/katalvlaran/trisolve/store"
)

// runSolve explores every configuration reachable from the chosen start,
// classifies each as won or lost, and persists the whole feasible set.
func runSolve(cmd *cobra.Command, _ []string) error {
	empty, err := board.ParsePosition(emptyPosition)
	if err != nil {
		return err
	}
	start, err := board.Start(empty)
	if err != nil {
		return err
	}

	logger.Info("solving", "empty_position", empty.String(), "start", start.String(), "workers", workers)

	res, err := solve.Solve(start,
		solve.WithContext(cmd.Context()),
		solve.WithWorkers(workers),
		solve.WithProgress(func(p solve.Progress) {
			logger.Info("layer expanded",
				"layer", p.Layer, "boards", p.Boards, "edges", p.Edges, "probes", p.Probes)
		}),
	)
	if err != nil {
		return err
	}
	stats := res.Stats()
	logger.Info("search complete",
		"boards", stats.Boards, "edges", stats.Edges, "duration", stats.Duration)

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if err := s.Init(ctx); err != nil {
		return err
	}
	if err := s.SetStart(ctx, start); err != nil {
		return err
	}
	for _, b := range res.Boards() {
		cfg := store.Configuration{Board: b, Feasible: true, Won: res.Won(b)}
		if err := s.PutConfiguration(ctx, cfg); err != nil {
			return err
		}
	}
	logger.Info("results saved", "configurations", stats.Boards, "path", dbPath)

	return nil
}
