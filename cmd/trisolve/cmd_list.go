package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trisolve/sequence"
	"github.com/katalvlaran/trisolve/solve"
	"github.com/katalvlaran/trisolve/store"
)

// runListSequences lists the solving sequences of one configuration.
// Stored sequences are preferred; otherwise they are computed on demand
// from the persisted start board and optionally saved back.
func runListSequences(cmd *cobra.Command, args []string) error {
	b, err := parseBoardArg(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := s.GetConfiguration(ctx, b)
	if err != nil {
		return err
	}

	// A known symmetry duplicate points at its representative instead of
	// repeating its sequences.
	if link, err := s.TransformationOf(ctx, b); err == nil {
		fmt.Fprintf(out, "%s is a %s of %s\n%s\n",
			describeBoard(link.From), link.By, describeBoard(link.To), link.To.Render(3))

		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	stored, err := s.SequenceCount(ctx, b)
	if err != nil {
		return err
	}
	if stored > 0 {
		return listStored(cmd, s, cfg, stored)
	}

	return listComputed(cmd, s, cfg)
}

// listStored prints sequences already present in the database.
func listStored(cmd *cobra.Command, s *store.Badger, cfg store.Configuration, total int) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d stored sequences\n%s\n", describeBoard(cfg.Board), total, cfg.Board.Render(3))

	seqs, err := s.ListSequences(cmd.Context(), cfg.Board)
	if err != nil {
		return err
	}
	for i, seq := range seqs {
		if listLimit > 0 && i >= listLimit {
			break
		}
		fmt.Fprintf(out, "%d (%d moves) %s\n", i, len(seq), seq)
	}

	return nil
}

// listComputed re-runs the search from the persisted start and
// enumerates sequences on demand.
func listComputed(cmd *cobra.Command, s *store.Badger, cfg store.Configuration) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if !cfg.Won {
		fmt.Fprintf(out, "%s has no solving sequences\n", describeBoard(cfg.Board))

		return nil
	}

	start, err := s.Start(ctx)
	if err != nil {
		return fmt.Errorf("no solve results recorded yet: %w", err)
	}
	res, err := solve.Solve(start, solve.WithContext(ctx))
	if err != nil {
		return err
	}
	enum, err := sequence.New(res)
	if err != nil {
		return err
	}

	total, err := enum.Count(cfg.Board)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d sequences\n%s\n", describeBoard(cfg.Board), total, cfg.Board.Render(3))

	shown := 0
	err = enum.Walk(cfg.Board, func(seq sequence.Sequence) error {
		if saveSequences {
			if err := s.PutSequence(ctx, cfg.Board, seq); err != nil {
				return err
			}
		}
		if listLimit <= 0 || shown < listLimit {
			fmt.Fprintf(out, "%d (%d moves) %s\n", shown, len(seq), seq)
		}
		shown++
		if !saveSequences && listLimit > 0 && shown >= listLimit {
			return sequence.Stop
		}

		return nil
	})
	if err != nil {
		return err
	}
	if saveSequences {
		logger.Info("sequences saved", "configuration", int(cfg.Board), "count", total)
	}

	return nil
}
