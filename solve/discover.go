package solve

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/topology"
)

// parallelThreshold is the minimum layer size worth splitting across
// workers; smaller layers are expanded serially even with WithWorkers.
const parallelThreshold = 64

// walker encapsulates the mutable state of one layered search.
type walker struct {
	opts options
	res  *Result
	tpls []topology.MoveTemplate
}

// Discover performs the forward closure from start: a breadth-first walk
// whose frontier is always one peg-count layer, recording every feasible
// board and every transition edge. start values outside 0..32767 fail
// fast with board.ErrInvalidBoard.
func Discover(start board.Board, opts ...Option) (*Result, error) {
	if start > board.Full {
		return nil, fmt.Errorf("%w: %d", board.ErrInvalidBoard, start)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{opts: o, res: newResult(start), tpls: topology.Templates()}
	if err := w.run(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// Solve runs Discover and then Classify.
func Solve(start board.Board, opts ...Option) (*Result, error) {
	res, err := Discover(start, opts...)
	if err != nil {
		return nil, err
	}
	res.Classify()

	return res, nil
}

// run drives the layer loop. Peg count strictly decreases along every
// edge, so each iteration expands one layer into the next; the loop ends
// at the 1-peg layer or at the first layer with no successors.
func (w *walker) run() error {
	started := time.Now()
	defer func() { w.res.stats.Duration = time.Since(started) }()

	pegs := w.res.start.PegCount()
	w.res.feasible[w.res.start] = true
	w.res.layers[pegs] = []board.Board{w.res.start}
	w.res.stats.Boards = 1

	for ; pegs > 1; pegs-- {
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		next, err := w.expand(w.res.layers[pegs])
		if err != nil {
			return err
		}
		if len(next) > 0 {
			w.res.layers[pegs-1] = next
			w.res.stats.Boards += len(next)
		}
		w.res.stats.Layers++
		if w.opts.progress != nil {
			w.opts.progress(Progress{
				Layer:  pegs,
				Boards: w.res.stats.Boards,
				Edges:  w.res.stats.Edges,
				Probes: w.res.stats.Probes,
			})
		}
		if len(next) == 0 {
			break
		}
	}

	return nil
}

// expand produces the successor layer of layer, serially or across
// workers. Either way the outcome is identical: edge lists are written
// per owning board, and the merged successor layer is sorted ascending.
func (w *walker) expand(layer []board.Board) ([]board.Board, error) {
	if w.opts.workers > 1 && len(layer) >= parallelThreshold {
		return w.expandParallel(layer)
	}

	cand, edges, probes := w.expandChunk(layer)
	w.res.stats.Edges += edges
	w.res.stats.Probes += probes

	return w.merge([][]board.Board{cand}), nil
}

// expandChunk probes every template against every board of the chunk,
// records each board's edge list, and collects successor candidates
// (possibly with duplicates across boards).
func (w *walker) expandChunk(chunk []board.Board) (cand []board.Board, edges, probes int) {
	for _, b := range chunk {
		var es []Edge
		for _, t := range w.tpls {
			probes++
			if nb, ok := topology.Apply(b, t); ok {
				es = append(es, Edge{Move: t, To: nb})
				cand = append(cand, nb)
			}
		}
		w.res.edges[b] = es
		edges += len(es)
	}

	return cand, edges, probes
}

// expandParallel splits the layer across the worker pool with one
// barrier at the end. Workers never touch shared tables: candidates and
// counters are collected per chunk and merged on the calling goroutine.
func (w *walker) expandParallel(layer []board.Board) ([]board.Board, error) {
	workers := w.opts.workers
	if workers > len(layer) {
		workers = len(layer)
	}
	chunkSize := (len(layer) + workers - 1) / workers

	cands := make([][]board.Board, workers)
	edgeCounts := make([]int, workers)
	probeCounts := make([]int, workers)

	g, ctx := errgroup.WithContext(w.opts.ctx)
	for i := 0; i < workers; i++ {
		lo := i * chunkSize
		hi := lo + chunkSize
		if hi > len(layer) {
			hi = len(layer)
		}
		if lo >= hi {
			continue
		}
		i, chunk := i, layer[lo:hi]
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			cands[i], edgeCounts[i], probeCounts[i] = w.expandChunk(chunk)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := 0; i < workers; i++ {
		w.res.stats.Edges += edgeCounts[i]
		w.res.stats.Probes += probeCounts[i]
	}

	return w.merge(cands), nil
}

// merge marks unseen candidates feasible and returns them as the next
// layer, sorted ascending so the layer order never depends on worker
// interleaving or discovery order.
func (w *walker) merge(cands [][]board.Board) []board.Board {
	var next []board.Board
	for _, cand := range cands {
		for _, b := range cand {
			if !w.res.feasible[b] {
				w.res.feasible[b] = true
				next = append(next, b)
			}
		}
	}
	sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })

	return next
}
