package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/symmetry"
)

// runAnalysisTransformations reduces the stored configurations to
// symmetry-unique classes and records a link for every duplicate.
func runAnalysisTransformations(cmd *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()
	ctx := cmd.Context()

	cfgs, err := s.Configurations(ctx)
	if err != nil {
		return err
	}
	boards := make([]board.Board, 0, len(cfgs))
	for _, c := range cfgs {
		if c.Feasible {
			boards = append(boards, c.Board)
		}
	}

	unique, links := symmetry.Reduce(boards)
	for _, l := range links {
		if err := s.PutTransformation(ctx, l); err != nil {
			return err
		}
	}

	logger.Info("transformations identified",
		"configurations", len(boards), "unique", len(unique), "links", len(links))

	return nil
}
