// Package store persists solver output — configurations, solving
// sequences, and symmetry links — behind a small Store interface backed
// by embedded BadgerDB.
//
// What:
//
//   - Configuration records: board id → (feasible, won), written at most
//     once per board; configurations are immutable once stored.
//   - Sequence records: per-board ordered lists of (from, over, to)
//     moves, appended with stable indices.
//   - Transformation records: duplicate board → symmetry representative.
//   - The search root, so later queries know which game was solved.
//
// Why:
//
//	The board integer is a ready-made key, so a flat key-value store
//	fits better than a relational schema. Badger keeps it embedded: one
//	directory, no server, and an in-memory mode for tests.
//
// Key layout (all integers big-endian):
//
//	c<board:2>            → flags byte (bit0 feasible, bit1 won)
//	n<board:2>            → sequence count, 4 bytes
//	s<board:2><index:4>   → moves, 3 bytes each (from, over, to)
//	t<board:2>            → representative board (2) + transformation (1)
//	m:schema              → schema version byte
//	m:start               → root board, 2 bytes
//
// Errors:
//
//   - ErrNotFound: no record under the requested key.
//   - ErrSchema: the database was initialized by an incompatible version.
//   - ErrCorrupt: a stored record fails to decode.
//
// I/O failures from the engine are wrapped and surfaced unmodified in
// meaning; the store never retries.
package store
