package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Global flag variables.
var (
	dbPath        string
	emptyPosition int
	workers       int
	listLimit     int
	saveSequences bool

	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	rootCmd = &cobra.Command{
		Use:           "trisolve",
		Short:         "Solve and query 15-hole triangular peg solitaire",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// --- Database management ---
	dbCmd = &cobra.Command{
		Use:   "db",
		Short: "Manage the results database",
	}
	dbInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create the database (idempotent)",
		Args:  cobra.NoArgs,
		RunE:  runDBInit,
	}
	dbDropCmd = &cobra.Command{
		Use:   "drop",
		Short: "Remove all records from the database",
		Args:  cobra.NoArgs,
		RunE:  runDBDrop,
	}
	dbResetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Drop and re-create the database",
		Args:  cobra.NoArgs,
		RunE:  runDBReset,
	}

	// --- Solving ---
	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Explore and classify every configuration, then persist the results",
		Args:  cobra.NoArgs,
		RunE:  runSolve,
	}

	// --- Viewing ---
	viewCmd = &cobra.Command{
		Use:   "view",
		Short: "Render stored configurations and sequences",
	}
	viewConfigurationCmd = &cobra.Command{
		Use:   "configuration <id>",
		Short: "Render one configuration as a triangular glyph grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runViewConfiguration,
	}
	viewSequenceCmd = &cobra.Command{
		Use:   "sequence <configuration-id> <index>",
		Short: "Replay one stored sequence board by board",
		Args:  cobra.ExactArgs(2),
		RunE:  runViewSequence,
	}

	// --- Listing ---
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List stored or computed records",
	}
	listSequencesCmd = &cobra.Command{
		Use:   "sequences <configuration-id>",
		Short: "List the solving sequences of a configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  runListSequences,
	}

	// --- Analysis ---
	analysisCmd = &cobra.Command{
		Use:   "analysis",
		Short: "Derived analyses over stored configurations",
	}
	analysisTransformationsCmd = &cobra.Command{
		Use:   "transformations",
		Short: "Reduce stored configurations to symmetry-unique classes",
		Args:  cobra.NoArgs,
		RunE:  runAnalysisTransformations,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "trisolve.db",
		"directory of the results database")

	solveCmd.Flags().IntVar(&emptyPosition, "empty-position", 14,
		"position left empty on the starting board (0..14)")
	solveCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(),
		"goroutines used to expand each search layer")

	listSequencesCmd.Flags().IntVar(&listLimit, "limit", 0,
		"maximum number of sequences to list (0 = all)")
	listSequencesCmd.Flags().BoolVar(&saveSequences, "save", false,
		"persist computed sequences to the database")

	dbCmd.AddCommand(dbInitCmd, dbDropCmd, dbResetCmd)
	viewCmd.AddCommand(viewConfigurationCmd, viewSequenceCmd)
	listCmd.AddCommand(listSequencesCmd)
	analysisCmd.AddCommand(analysisTransformationsCmd)
	rootCmd.AddCommand(dbCmd, solveCmd, viewCmd, listCmd, analysisCmd)
}
