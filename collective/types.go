package collective

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors. Remote callers get the same sentinels back via errors.Is.
var (
	// ErrProtocol marks divergent participation: mismatched operations or
	// roots within a step, double arrival, or leaving mid-protocol.
	ErrProtocol = errors.New("collective: protocol violation")

	// ErrAborted is returned to every caller once the group has been aborted.
	ErrAborted = errors.New("collective: group aborted")

	// ErrRetired is returned to a rank that was shrunk out of the group.
	ErrRetired = errors.New("collective: rank retired from group")

	// ErrRank is returned for a rank or root outside the group.
	ErrRank = errors.New("collective: rank out of range")

	// ErrSize is returned for a group size < 1 or an invalid shrink target.
	ErrSize = errors.New("collective: invalid group size")

	// ErrClosed is returned by an endpoint after Close.
	ErrClosed = errors.New("collective: endpoint closed")
)

// remoteSentinels lists the sentinels recovered from net/rpc error strings.
var remoteSentinels = []error{ErrProtocol, ErrAborted, ErrRetired, ErrRank, ErrSize, ErrClosed}

// Infinity is the weight a worker reports when it has no candidate.
const Infinity int64 = math.MaxInt64

// Kind identifies a collective operation.
type Kind uint8

const (
	KindBroadcast Kind = iota + 1
	KindMinLoc
	KindScatter
	KindBarrier
	KindShrink
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBroadcast:
		return "broadcast"
	case KindMinLoc:
		return "allreduce-minloc"
	case KindScatter:
		return "scatter"
	case KindBarrier:
		return "barrier"
	case KindShrink:
		return "shrink"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MinLoc is a value tagged with the rank that produced it.
type MinLoc struct {
	Weight int64
	Rank   int
}

// Less orders MinLoc values by weight, then by rank, so that equal weights
// resolve to the lowest rank.
func (a MinLoc) Less(b MinLoc) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.Rank < b.Rank
}

// ReduceMinLoc returns the smallest value under Less. The result does not
// depend on the order of vals. An empty input yields {Infinity, -1}.
func ReduceMinLoc(vals []MinLoc) MinLoc {
	best := MinLoc{Weight: Infinity, Rank: -1}
	for i, v := range vals {
		if i == 0 || v.Less(best) {
			best = v
		}
	}

	return best
}

// Message is the unit a rank hands to the hub for one step, and the unit it
// gets back. Fields are exported for gob.
type Message struct {
	Kind  Kind
	Root  int       // broadcast/scatter root, or the target size for shrink
	Value MinLoc    // minloc contribution / result
	Data  []int64   // broadcast payload (root) / received payload
	Parts [][]int64 // scatter payload, one entry per rank (root only)
}

// Transport is the collective capability the MST round loop is written
// against. All calls block until every current member has made the same call.
type Transport interface {
	// Rank returns this worker's id in [0, Size()).
	Rank() int
	// Size returns the number of current members.
	Size() int
	// Broadcast returns root's data on every member; data is ignored on non-roots.
	Broadcast(ctx context.Context, root int, data []int64) ([]int64, error)
	// AllReduceMinLoc returns the smallest (weight, rank) pair across members.
	// The rank of the local contribution is always this endpoint's rank.
	AllReduceMinLoc(ctx context.Context, weight int64) (MinLoc, error)
	// Scatter delivers parts[i] from root to member i; parts is ignored on non-roots.
	Scatter(ctx context.Context, root int, parts [][]int64) ([]int64, error)
	// Barrier returns once every member has reached it.
	Barrier(ctx context.Context) error
	// Shrink keeps ranks [0, size) as members; the rest are retired.
	Shrink(ctx context.Context, size int) error
	// Abort releases every blocked member of the group with ErrAborted.
	Abort(cause error)
	// Close leaves the group.
	Close() error
}
