package collective

import (
	"context"
	"fmt"
	"sync"
)

// Hub is the rendezvous point of one group. It is safe for concurrent use by
// all members.
type Hub struct {
	mu      sync.Mutex
	initial int    // size at creation; ranks in [size, initial) are retired
	size    int    // current member count
	left    []bool // rank has left the group
	nleft   int
	cur     *step  // open step, nil between steps
	steps   uint64 // completed steps
	err     error  // set once on abort
	aborted chan struct{}
	done    chan struct{} // closed when every rank has left, or on abort
	closed  bool          // done is closed
}

// step is one collective in flight.
type step struct {
	kind    Kind
	root    int
	msgs    []Message
	present []bool
	arrived int
	replies []Message
	done    chan struct{}
}

// NewHub returns a hub for a group of size ranks.
func NewHub(size int) (*Hub, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewHub(%d): %w", size, ErrSize)
	}

	return &Hub{
		initial: size,
		size:    size,
		left:    make([]bool, size),
		aborted: make(chan struct{}),
		done:    make(chan struct{}),
	}, nil
}

// Size returns the current member count.
func (h *Hub) Size() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.size
}

// Steps returns how many collective steps have completed.
func (h *Hub) Steps() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.steps
}

// Err returns the abort cause, or nil while the group is healthy.
func (h *Hub) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}

// Done is closed once every rank has left or the group was aborted.
func (h *Hub) Done() <-chan struct{} { return h.done }

// Exchange submits rank's message for the current step and blocks until the
// step completes, the group aborts, or ctx ends. A caller whose ctx ends
// aborts the whole group: the step can no longer complete without it.
func (h *Hub) Exchange(ctx context.Context, rank int, msg Message) (Message, error) {
	h.mu.Lock()
	if h.err != nil {
		err := h.err
		h.mu.Unlock()
		return Message{}, err
	}
	if err := h.checkMemberLocked(rank); err != nil {
		h.mu.Unlock()
		return Message{}, err
	}
	if err := ctx.Err(); err != nil {
		err = h.abortLocked(fmt.Errorf("rank %d entered %s: %w", rank, msg.Kind, err))
		h.mu.Unlock()
		return Message{}, err
	}

	st := h.cur
	if st == nil {
		// A member that already left can never arrive.
		for r := 0; r < h.size; r++ {
			if h.left[r] {
				err := h.abortLocked(fmt.Errorf("rank %d opened %s after rank %d left: %w", rank, msg.Kind, r, ErrProtocol))
				h.mu.Unlock()
				return Message{}, err
			}
		}
		st = &step{
			kind:    msg.Kind,
			root:    msg.Root,
			msgs:    make([]Message, h.size),
			present: make([]bool, h.size),
			done:    make(chan struct{}),
		}
		h.cur = st
	} else if st.kind != msg.Kind || st.root != msg.Root {
		err := h.abortLocked(fmt.Errorf("rank %d called %s(root=%d) during %s(root=%d): %w",
			rank, msg.Kind, msg.Root, st.kind, st.root, ErrProtocol))
		h.mu.Unlock()
		return Message{}, err
	}
	if st.present[rank] {
		err := h.abortLocked(fmt.Errorf("rank %d arrived twice at %s: %w", rank, st.kind, ErrProtocol))
		h.mu.Unlock()
		return Message{}, err
	}

	st.present[rank] = true
	st.msgs[rank] = msg
	st.arrived++

	if st.arrived == len(st.msgs) {
		replies, size, err := complete(st)
		if err != nil {
			err = h.abortLocked(err)
			h.mu.Unlock()
			return Message{}, err
		}
		st.replies = replies
		h.cur = nil
		h.steps++
		if size > 0 {
			h.size = size
		}
		close(st.done)
		h.mu.Unlock()

		return replies[rank], nil
	}
	h.mu.Unlock()

	select {
	case <-st.done:
		return st.replies[rank], nil
	case <-h.aborted:
		// The step may have completed just before the abort.
		select {
		case <-st.done:
			return st.replies[rank], nil
		default:
		}
		return Message{}, h.Err()
	case <-ctx.Done():
		return Message{}, h.Abort(fmt.Errorf("rank %d left %s: %w", rank, st.kind, ctx.Err()))
	}
}

// Abort aborts the group with cause and returns the stored abort error.
// Only the first cause is kept.
func (h *Hub) Abort(cause error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.abortLocked(cause)
}

// Leave records that rank is done with the group. Leaving while a step is
// open that rank has not joined aborts the group.
func (h *Hub) Leave(rank int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if rank < 0 || rank >= h.initial || h.left[rank] {
		return
	}
	h.left[rank] = true
	h.nleft++
	if st := h.cur; st != nil && rank < len(st.present) && !st.present[rank] && h.err == nil {
		h.abortLocked(fmt.Errorf("rank %d left during %s: %w", rank, st.kind, ErrProtocol))
	}
	if h.nleft == h.initial {
		h.closeDoneLocked()
	}
}

func (h *Hub) checkMemberLocked(rank int) error {
	switch {
	case rank < 0 || rank >= h.initial:
		return fmt.Errorf("rank %d of %d: %w", rank, h.initial, ErrRank)
	case rank >= h.size:
		return fmt.Errorf("rank %d, group size %d: %w", rank, h.size, ErrRetired)
	case h.left[rank]:
		return fmt.Errorf("rank %d: %w", rank, ErrClosed)
	}

	return nil
}

func (h *Hub) abortLocked(cause error) error {
	if h.err != nil {
		return h.err
	}
	h.err = fmt.Errorf("%w: %w", ErrAborted, cause)
	close(h.aborted)
	h.closeDoneLocked()

	return h.err
}

func (h *Hub) closeDoneLocked() {
	if !h.closed {
		h.closed = true
		close(h.done)
	}
}

// complete computes per-rank replies once every member has arrived. A
// positive size is the new member count after a shrink.
func complete(st *step) ([]Message, int, error) {
	n := len(st.msgs)
	replies := make([]Message, n)

	switch st.kind {
	case KindBroadcast:
		if st.root < 0 || st.root >= n {
			return nil, 0, fmt.Errorf("broadcast root %d of %d: %w", st.root, n, ErrRank)
		}
		src := st.msgs[st.root].Data
		for i := range replies {
			replies[i] = Message{Kind: st.kind, Root: st.root, Data: append([]int64(nil), src...)}
		}

	case KindMinLoc:
		vals := make([]MinLoc, n)
		for i, m := range st.msgs {
			// The hub knows who sent what; the rank field is not trusted.
			vals[i] = MinLoc{Weight: m.Value.Weight, Rank: i}
		}
		win := ReduceMinLoc(vals)
		for i := range replies {
			replies[i] = Message{Kind: st.kind, Value: win}
		}

	case KindScatter:
		if st.root < 0 || st.root >= n {
			return nil, 0, fmt.Errorf("scatter root %d of %d: %w", st.root, n, ErrRank)
		}
		parts := st.msgs[st.root].Parts
		if len(parts) != n {
			return nil, 0, fmt.Errorf("scatter of %d parts to %d ranks: %w", len(parts), n, ErrProtocol)
		}
		for i := range replies {
			replies[i] = Message{Kind: st.kind, Root: st.root, Data: append([]int64(nil), parts[i]...)}
		}

	case KindBarrier:
		for i := range replies {
			replies[i] = Message{Kind: st.kind}
		}

	case KindShrink:
		if st.root < 1 || st.root > n {
			return nil, 0, fmt.Errorf("shrink %d -> %d: %w", n, st.root, ErrSize)
		}
		for i := range replies {
			replies[i] = Message{Kind: st.kind, Root: st.root}
		}

		return replies, st.root, nil

	default:
		return nil, 0, fmt.Errorf("unknown %s: %w", st.kind, ErrProtocol)
	}

	return replies, 0, nil
}
