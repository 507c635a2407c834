package dprim

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dprim/collective"
	"github.com/katalvlaran/dprim/matrix"
)

// Sentinel errors.
var (
	// ErrInput is returned when the coordinator could not load a valid graph.
	ErrInput = errors.New("dprim: invalid input graph")

	// ErrConfiguration is returned when the group cannot run the graph as configured.
	ErrConfiguration = errors.New("dprim: invalid configuration")

	// ErrDisconnected is wrapped by *RoundError when no edge leaves the tree.
	ErrDisconnected = errors.New("dprim: graph is not connected")

	// ErrProtocol is returned when workers disagree on agreed data.
	ErrProtocol = errors.New("dprim: protocol violation")

	// ErrInternal marks a tree transition that can only come from a defect.
	ErrInternal = errors.New("dprim: internal error")
)

// Infinity is the weight of a candidate that does not exist.
const Infinity = collective.Infinity

// Candidate is one worker's cheapest edge leaving the tree in a round.
// Source is a row index local to the worker's chunk; Dest is global.
type Candidate struct {
	Weight int64
	Source int
	Dest   int
	Owner  int
}

// Found reports whether the candidate holds an edge.
func (c Candidate) Found() bool { return c.Weight != Infinity }

// Edge is an MST edge in global vertex ids.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Loader produces the input graph. Only the coordinator calls it.
type Loader func(ctx context.Context) (*matrix.Dense, error)

// Option configures a Worker.
type Option func(*Options)

// Options holds the worker configuration and hooks.
type Options struct {
	// Loader is called by rank 0 to obtain the graph.
	Loader Loader

	// Strict turns surplus workers (P > N) into ErrConfiguration instead of
	// retiring them from the group.
	Strict bool

	// OnRound is called by every active worker after a round's edge has been
	// applied. With Run the hooks of all workers run concurrently.
	OnRound func(rank, round int, e Edge)

	// OnIdle is called by a worker that has no rows and leaves the group.
	OnIdle func(rank int)
}

// DefaultOptions returns options with no loader, idle exit for surplus
// workers and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnRound: func(int, int, Edge) {},
		OnIdle:  func(int) {},
	}
}

// WithLoader sets the coordinator's graph source.
func WithLoader(l Loader) Option {
	return func(o *Options) {
		if l != nil {
			o.Loader = l
		}
	}
}

// WithStrictWorkers rejects groups larger than the vertex count.
func WithStrictWorkers() Option {
	return func(o *Options) { o.Strict = true }
}

// WithOnRound registers a per-round callback.
func WithOnRound(fn func(rank, round int, e Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithOnIdle registers a callback for workers retired before the rounds.
func WithOnIdle(fn func(rank int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIdle = fn
		}
	}
}

// RoundError reports a round that could not add a vertex. Partial holds the
// tree built by the previous rounds.
type RoundError struct {
	Round   int
	Err     error
	Partial *Result
}

func (e *RoundError) Error() string {
	return fmt.Sprintf("dprim: round %d: %v", e.Round, e.Err)
}

func (e *RoundError) Unwrap() error { return e.Err }
