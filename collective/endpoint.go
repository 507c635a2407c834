package collective

import (
	"context"
	"fmt"
	"sync"
)

// link carries messages between an endpoint and its hub.
type link interface {
	exchange(ctx context.Context, rank int, msg Message) (Message, error)
	abort(rank int, cause error)
	leave(rank int) error
}

// Endpoint is one rank's handle on a group. Each worker owns exactly one
// endpoint and must not share it across goroutines.
type Endpoint struct {
	rank int
	size int
	link link

	closeOnce sync.Once
	closed    bool
}

var _ Transport = (*Endpoint)(nil)

// Rank returns this endpoint's rank.
func (e *Endpoint) Rank() int { return e.rank }

// Size returns the member count as last agreed by this endpoint.
func (e *Endpoint) Size() int { return e.size }

func (e *Endpoint) call(ctx context.Context, msg Message) (Message, error) {
	if e.closed {
		return Message{}, ErrClosed
	}
	if e.rank >= e.size {
		return Message{}, fmt.Errorf("rank %d, group size %d: %w", e.rank, e.size, ErrRetired)
	}

	return e.link.exchange(ctx, e.rank, msg)
}

// Broadcast implements Transport.
func (e *Endpoint) Broadcast(ctx context.Context, root int, data []int64) ([]int64, error) {
	msg := Message{Kind: KindBroadcast, Root: root}
	if e.rank == root {
		msg.Data = data
	}
	rep, err := e.call(ctx, msg)
	if err != nil {
		return nil, err
	}

	return rep.Data, nil
}

// AllReduceMinLoc implements Transport.
func (e *Endpoint) AllReduceMinLoc(ctx context.Context, weight int64) (MinLoc, error) {
	rep, err := e.call(ctx, Message{Kind: KindMinLoc, Value: MinLoc{Weight: weight, Rank: e.rank}})
	if err != nil {
		return MinLoc{}, err
	}

	return rep.Value, nil
}

// Scatter implements Transport.
func (e *Endpoint) Scatter(ctx context.Context, root int, parts [][]int64) ([]int64, error) {
	msg := Message{Kind: KindScatter, Root: root}
	if e.rank == root {
		msg.Parts = parts
	}
	rep, err := e.call(ctx, msg)
	if err != nil {
		return nil, err
	}

	return rep.Data, nil
}

// Barrier implements Transport.
func (e *Endpoint) Barrier(ctx context.Context) error {
	_, err := e.call(ctx, Message{Kind: KindBarrier})

	return err
}

// Shrink implements Transport. Every member must pass the same size.
func (e *Endpoint) Shrink(ctx context.Context, size int) error {
	if _, err := e.call(ctx, Message{Kind: KindShrink, Root: size}); err != nil {
		return err
	}
	e.size = size

	return nil
}

// Abort implements Transport.
func (e *Endpoint) Abort(cause error) {
	if cause == nil {
		cause = ErrAborted
	}
	e.link.abort(e.rank, cause)
}

// Close leaves the group. It is idempotent.
func (e *Endpoint) Close() error {
	var err error
	e.closeOnce.Do(func() {
		e.closed = true
		err = e.link.leave(e.rank)
	})

	return err
}

// hubLink is the in-process link: direct calls into a shared Hub.
type hubLink struct{ hub *Hub }

func (l hubLink) exchange(ctx context.Context, rank int, msg Message) (Message, error) {
	return l.hub.Exchange(ctx, rank, msg)
}

func (l hubLink) abort(rank int, cause error) {
	l.hub.Abort(fmt.Errorf("rank %d: %w", rank, cause))
}

func (l hubLink) leave(rank int) error {
	l.hub.Leave(rank)

	return nil
}

// NewGroup returns size in-process endpoints sharing one hub, indexed by rank.
func NewGroup(size int) ([]*Endpoint, *Hub, error) {
	hub, err := NewHub(size)
	if err != nil {
		return nil, nil, err
	}
	eps := make([]*Endpoint, size)
	for r := range eps {
		eps[r] = &Endpoint{rank: r, size: size, link: hubLink{hub: hub}}
	}

	return eps, hub, nil
}
