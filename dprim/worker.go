package dprim

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dprim/collective"
	"github.com/katalvlaran/dprim/matrix"
	"github.com/katalvlaran/dprim/partition"
	"github.com/katalvlaran/dprim/tree"
)

// coordinator is the rank that loads the graph and aggregates the result.
const coordinator = 0

// Header status codes, broadcast by the coordinator before partitioning.
const (
	statusOK int64 = iota
	statusInput
	statusConfiguration
)

// Worker runs one rank of the distributed algorithm over a Transport.
// A Worker is single-use.
type Worker struct {
	t    collective.Transport
	opts Options
}

// NewWorker binds a worker to t.
func NewWorker(t collective.Transport, opts ...Option) *Worker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Worker{t: t, opts: o}
}

// Rank returns the worker's rank in its group.
func (w *Worker) Rank() int { return w.t.Rank() }

// Run executes the protocol to completion. The coordinator returns the
// Result; other ranks, including retired idle ones, return (nil, nil).
//
// Steps:
//  1. Header: rank 0 loads and validates the graph, then broadcasts [status, N].
//  2. Plan: every rank builds and validates the same partition.Plan.
//  3. Idle exit: the group shrinks to the active ranks.
//  4. Distribution: rank 0 scatters the row blocks; each rank checks its own.
//  5. Rounds: N−1 × (Scan, AllReduceMinLoc, Broadcast, Visit).
//  6. Barrier, then rank 0 aggregates.
//
// Run does not close the transport.
func (w *Worker) Run(ctx context.Context) (*Result, error) {
	if w == nil || w.t == nil {
		return nil, fmt.Errorf("%w: nil transport", ErrConfiguration)
	}
	rank, size := w.t.Rank(), w.t.Size()

	// 1) Header.
	n, m, err := w.header(ctx)
	if err != nil {
		return nil, err
	}

	// 2) Plan.
	plan, err := partition.Build(n, size)
	if err == nil {
		err = plan.Validate()
	}
	if err != nil {
		return nil, w.abort(fmt.Errorf("%w: rank %d: %w", ErrInternal, rank, err))
	}

	// 3) Idle exit.
	if err = w.t.Shrink(ctx, plan.Active()); err != nil {
		return nil, w.abort(err)
	}
	if plan.Idle(rank) {
		w.opts.OnIdle(rank)
		return nil, nil
	}

	// 4) Distribution.
	chunk, err := w.distribute(ctx, plan, m)
	if err != nil {
		return nil, w.abort(err)
	}
	own, err := plan.Chunk(rank)
	if err != nil {
		return nil, w.abort(fmt.Errorf("%w: %w", ErrInternal, err))
	}

	// 5) Rounds.
	state, err := tree.New(n, 0)
	if err != nil {
		return nil, w.abort(fmt.Errorf("%w: %w", ErrInternal, err))
	}
	for round := 0; round < n-1; round++ {
		e, err := w.round(ctx, chunk, own.Offset, state)
		if err != nil {
			var rerr *RoundError
			if errors.As(err, &rerr) {
				rerr.Round = round
				return nil, rerr
			}
			return nil, w.abort(fmt.Errorf("round %d: %w", round, err))
		}
		w.opts.OnRound(rank, round, e)
	}

	// 6) Barrier + aggregation.
	if err = w.t.Barrier(ctx); err != nil {
		return nil, w.abort(err)
	}
	if rank != coordinator {
		return nil, nil
	}

	return Aggregate(state), nil
}

// header agrees on N, or on the reason there is nothing to run.
func (w *Worker) header(ctx context.Context) (int, *matrix.Dense, error) {
	var (
		payload []int64
		m       *matrix.Dense
		cause   error
	)
	if w.t.Rank() == coordinator {
		m, cause = w.load(ctx)
		switch {
		case cause != nil:
			payload = []int64{statusInput, 0}
		case w.opts.Strict && w.t.Size() > m.Rows():
			cause = fmt.Errorf("%w: %d workers for %d vertices", ErrConfiguration, w.t.Size(), m.Rows())
			payload = []int64{statusConfiguration, int64(m.Rows())}
		default:
			payload = []int64{statusOK, int64(m.Rows())}
		}
	}

	hdr, err := w.t.Broadcast(ctx, coordinator, payload)
	if err != nil {
		return 0, nil, errors.Join(cause, w.abort(err))
	}
	if len(hdr) != 2 {
		return 0, nil, w.abort(fmt.Errorf("%w: header of %d values", ErrProtocol, len(hdr)))
	}
	if cause != nil {
		return 0, nil, cause
	}

	switch hdr[0] {
	case statusOK:
	case statusInput:
		return 0, nil, fmt.Errorf("%w: reported by coordinator", ErrInput)
	case statusConfiguration:
		return 0, nil, fmt.Errorf("%w: %d workers for %d vertices", ErrConfiguration, w.t.Size(), hdr[1])
	default:
		return 0, nil, w.abort(fmt.Errorf("%w: header status %d", ErrProtocol, hdr[0]))
	}
	if hdr[1] < 1 {
		return 0, nil, w.abort(fmt.Errorf("%w: header vertex count %d", ErrProtocol, hdr[1]))
	}

	return int(hdr[1]), m, nil
}

// load runs the coordinator's Loader and validates the graph.
func (w *Worker) load(ctx context.Context) (*matrix.Dense, error) {
	if w.opts.Loader == nil {
		return nil, fmt.Errorf("%w: no loader on coordinator", ErrInput)
	}
	m, err := w.opts.Loader(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	if err = matrix.ValidateAdjacency(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}

	return m, nil
}

// distribute scatters the row blocks from the coordinator and wraps this
// rank's block as its chunk.
func (w *Worker) distribute(ctx context.Context, plan partition.Plan, m *matrix.Dense) (*matrix.Dense, error) {
	var parts [][]int64
	if w.t.Rank() == coordinator {
		all, err := plan.Split(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		// Idle ranks left the group in the shrink; their blocks are empty.
		parts = all[:plan.Active()]
	}

	block, err := w.t.Scatter(ctx, coordinator, parts)
	if err != nil {
		return nil, err
	}
	chunk, err := plan.Receive(w.t.Rank(), block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}

	return chunk, nil
}

// round runs one Scan → Reduce → Broadcast → Visit step and returns the
// applied edge. A round with no candidate anywhere returns *RoundError.
func (w *Worker) round(ctx context.Context, chunk *matrix.Dense, offset int, state *tree.State) (Edge, error) {
	rank := w.t.Rank()

	cand := Scan(chunk, offset, state)
	cand.Owner = rank

	win, err := w.t.AllReduceMinLoc(ctx, cand.Weight)
	if err != nil {
		return Edge{}, err
	}
	if win.Weight == Infinity {
		return Edge{}, &RoundError{Err: ErrDisconnected, Partial: Aggregate(state)}
	}

	var payload []int64
	if win.Rank == rank {
		payload = []int64{int64(cand.Source + offset), int64(cand.Dest), cand.Weight}
	}
	got, err := w.t.Broadcast(ctx, win.Rank, payload)
	if err != nil {
		return Edge{}, err
	}
	if len(got) != 3 || got[2] != win.Weight {
		return Edge{}, fmt.Errorf("%w: edge %v does not match reduced weight %d", ErrProtocol, got, win.Weight)
	}

	e := Edge{From: int(got[0]), To: int(got[1]), Weight: got[2]}
	if err = state.Visit(e.From, e.To, e.Weight); err != nil {
		if errors.Is(err, tree.ErrTotalOverflow) {
			// Every rank applies the same edge, so every rank stops here.
			return Edge{}, &RoundError{Err: fmt.Errorf("%w: %w", ErrInput, err), Partial: Aggregate(state)}
		}
		return Edge{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return e, nil
}

// abort tears the group down with err and returns it.
func (w *Worker) abort(err error) error {
	w.t.Abort(err)

	return err
}
