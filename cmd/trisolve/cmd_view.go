package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// runViewConfiguration renders one stored configuration.
func runViewConfiguration(cmd *cobra.Command, args []string) error {
	b, err := parseBoardArg(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg, err := s.GetConfiguration(cmd.Context(), b)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s feasible=%t won=%t\n%s\n",
		describeBoard(cfg.Board), cfg.Feasible, cfg.Won, cfg.Board.Render(3))

	return nil
}

// runViewSequence replays one stored sequence board by board.
func runViewSequence(cmd *cobra.Command, args []string) error {
	b, err := parseBoardArg(args[0])
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("sequence index %q: %w", args[1], err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	seq, err := s.GetSequence(cmd.Context(), b, index)
	if err != nil {
		return err
	}
	boards, err := seq.Replay(b)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sequence %d of %s: %s\n", index, describeBoard(b), seq)
	for i, step := range boards {
		if i == 0 {
			fmt.Fprintf(out, "start\n%s\n", step.Render(3))

			continue
		}
		fmt.Fprintf(out, "after %s\n%s\n", seq[i-1], step.Render(3))
	}

	return nil
}
