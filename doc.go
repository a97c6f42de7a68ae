// Package trisolve is a complete solver for 15-hole triangular peg
// solitaire: board modelling, move topology, exhaustive state-space
// search, win/loss classification, solution enumeration, symmetry
// analysis, and an embedded results database with a query CLI.
//
// 🚀 What is trisolve?
//
//	A small engine built on one structural fact: every jump removes one
//	peg, so the move graph over the 32768 possible boards is a DAG
//	layered by peg count. That makes full exploration, classification
//	and counting exact and fast — no heuristics, no pruning.
//
// Under the hood, everything is organized in flat subpackages:
//
//	board/    — Position and Board value types, parsing, rendering
//	topology/ — move templates from the lattice axes + the move engine
//	solve/    — layered reachability search and win classification
//	sequence/ — restartable enumeration of solving move sequences
//	symmetry/ — the triangle's symmetry group, canonical forms, reduction
//	store/    — BadgerDB-backed persistence of configurations/sequences
//	cmd/      — the trisolve CLI (db init, solve, view, list, analysis)
//
// Quick ASCII example — the classic game, apex hole empty:
//
//	    ○
//	   ● ●
//	  ● ● ●
//	 ● ● ● ●
//	● ● ● ● ●
//
//	trisolve solve --empty-position 0
//	trisolve view configuration 32766
//	trisolve list sequences 32766 --limit 5
//
//	go get github.com/katalvlaran/trisolve
package trisolve
