// File: cmd/trisolve/cli_test.go
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns its output.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), "args: %v", args)

	return buf.String()
}

// TestCLI_EndToEnd drives init → solve → view → list → analysis → reset
// against a throwaway on-disk database.
func TestCLI_EndToEnd(t *testing.T) {
	db := t.TempDir()

	runCLI(t, "--db", db, "db", "init")
	runCLI(t, "--db", db, "solve", "--empty-position", "0", "--workers", "2")

	// The apex-empty start persists as 32766 and the classic game is
	// winnable.
	out := runCLI(t, "--db", db, "view", "configuration", "32766")
	assert.Contains(t, out, "configuration 32766 (111111111111110)")
	assert.Contains(t, out, "feasible=true won=true")
	assert.Contains(t, out, "○")

	// Binary identifiers address the same record.
	out = runCLI(t, "--db", db, "view", "configuration", "111111111111110")
	assert.Contains(t, out, "configuration 32766")

	// Sequences are computed on demand; every full solution is 13 moves.
	out = runCLI(t, "--db", db, "list", "sequences", "32766", "--limit", "2")
	assert.Contains(t, out, "sequences")
	assert.Contains(t, out, "(13 moves)")

	runCLI(t, "--db", db, "analysis", "transformations")
	runCLI(t, "--db", db, "db", "reset")

	// After reset the record is gone.
	rootCmd.SetArgs([]string{"--db", db, "view", "configuration", "32766"})
	assert.Error(t, rootCmd.Execute())
}

// TestCLI_BadBoardID rejects malformed identifiers before touching the
// database.
func TestCLI_BadBoardID(t *testing.T) {
	db := t.TempDir()
	runCLI(t, "--db", db, "db", "init")

	rootCmd.SetArgs([]string{"--db", db, "view", "configuration", "pegboard"})
	assert.Error(t, rootCmd.Execute())
}
