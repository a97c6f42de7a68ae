package main

import (
	"fmt"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/store"
)

// openStore opens the database named by the --db flag.
func openStore() (*store.Badger, error) {
	s, err := store.Open(store.DefaultConfig(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open database at %s: %w", dbPath, err)
	}

	return s, nil
}

// parseBoardArg converts a CLI board identifier (decimal or 15-char
// binary) into a Board.
func parseBoardArg(arg string) (board.Board, error) {
	b, err := board.Parse(arg)
	if err != nil {
		return 0, fmt.Errorf("board id %q: %w", arg, err)
	}

	return b, nil
}

// describeBoard renders the standard one-line header for a board.
func describeBoard(b board.Board) string {
	return fmt.Sprintf("configuration %d (%s)", b, b)
}
