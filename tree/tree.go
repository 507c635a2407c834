// Package tree tracks which vertices have joined a growing spanning tree.
//
// Every worker keeps its own State and applies the same broadcast edge each
// round, so all copies stay identical without ever shipping the state itself.
// A vertex moves Unvisited → Visited(parent) exactly once; the root starts in
// the tree with no parent. Any other transition is an algorithm defect and is
// reported as an error rather than ignored.
package tree

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for illegal transitions.
var (
	// ErrVertexRange is returned for a vertex id outside [0, N).
	ErrVertexRange = errors.New("tree: vertex out of range")

	// ErrAlreadyVisited is returned when the destination is already in the tree.
	ErrAlreadyVisited = errors.New("tree: vertex already visited")

	// ErrDetached is returned when the source of an edge is not in the tree.
	ErrDetached = errors.New("tree: source vertex not in tree")

	// ErrNonPositiveWeight is returned for an edge weight <= 0; 0 means "no edge".
	ErrNonPositiveWeight = errors.New("tree: edge weight must be positive")

	// ErrTotalOverflow is returned when the edge would push the total past math.MaxInt64.
	ErrTotalOverflow = errors.New("tree: total weight overflows int64")

	// ErrEmpty is returned by New for a tree over zero vertices.
	ErrEmpty = errors.New("tree: vertex count must be >= 1")
)

// Status is the per-vertex membership fact.
type Status uint8

const (
	// Unvisited vertices are not yet part of the tree.
	Unvisited Status = iota
	// Visited vertices joined through an edge from their parent.
	Visited
	// Root is the vertex the tree was grown from.
	Root
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Visited:
		return "visited"
	case Root:
		return "root"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// NoParent is returned by Parent for the root and for unvisited vertices.
const NoParent = -1

// State is one worker's copy of the tree. It is not safe for concurrent use;
// each worker owns its own.
type State struct {
	status []Status
	parent []int
	weight []int64 // weight of the edge that attached each vertex
	order  []int   // vertices in visit order, root excluded
	root   int
	total  int64
}

// New returns a State over n vertices with root already in the tree.
func New(n, root int) (*State, error) {
	if n < 1 {
		return nil, ErrEmpty
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("New(root=%d): %w", root, ErrVertexRange)
	}

	s := &State{
		status: make([]Status, n),
		parent: make([]int, n),
		weight: make([]int64, n),
		order:  make([]int, 0, n-1),
		root:   root,
	}
	for v := range s.parent {
		s.parent[v] = NoParent
	}
	s.status[root] = Root

	return s, nil
}

// Visit applies the round's edge (u, v, w): v joins the tree under u.
//
// Errors, checked in order:
//   - ErrVertexRange when u or v is out of range.
//   - ErrNonPositiveWeight when w <= 0.
//   - ErrDetached when u is not in the tree.
//   - ErrAlreadyVisited when v is already in the tree.
//   - ErrTotalOverflow when total+w exceeds math.MaxInt64.
//
// On error the state is left unchanged.
func (s *State) Visit(u, v int, w int64) error {
	n := len(s.status)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("Visit(%d,%d): %w", u, v, ErrVertexRange)
	}
	if w <= 0 {
		return fmt.Errorf("Visit(%d,%d,w=%d): %w", u, v, w, ErrNonPositiveWeight)
	}
	if s.status[u] == Unvisited {
		return fmt.Errorf("Visit(%d,%d): %w", u, v, ErrDetached)
	}
	if s.status[v] != Unvisited {
		return fmt.Errorf("Visit(%d,%d): %w", u, v, ErrAlreadyVisited)
	}
	if s.total > math.MaxInt64-w {
		return fmt.Errorf("Visit(%d,%d,w=%d): total %d: %w", u, v, w, s.total, ErrTotalOverflow)
	}

	s.status[v] = Visited
	s.parent[v] = u
	s.weight[v] = w
	s.order = append(s.order, v)
	s.total += w

	return nil
}

// Size returns N.
func (s *State) Size() int { return len(s.status) }

// Root returns the root vertex.
func (s *State) Root() int { return s.root }

// Len returns how many vertices are in the tree, root included.
func (s *State) Len() int { return len(s.order) + 1 }

// Complete reports whether every vertex has joined (after N-1 visits).
func (s *State) Complete() bool { return s.Len() == len(s.status) }

// InTree reports whether v is in the tree. Out-of-range ids are not.
func (s *State) InTree(v int) bool {
	return v >= 0 && v < len(s.status) && s.status[v] != Unvisited
}

// Status returns the membership fact for v.
func (s *State) Status(v int) (Status, error) {
	if v < 0 || v >= len(s.status) {
		return Unvisited, fmt.Errorf("Status(%d): %w", v, ErrVertexRange)
	}

	return s.status[v], nil
}

// Parent returns v's parent, or NoParent for the root and unvisited vertices.
func (s *State) Parent(v int) int {
	if v < 0 || v >= len(s.parent) {
		return NoParent
	}

	return s.parent[v]
}

// Weight returns the weight of the edge that attached v (0 for root/unvisited).
func (s *State) Weight(v int) int64 {
	if v < 0 || v >= len(s.weight) {
		return 0
	}

	return s.weight[v]
}

// Total returns the sum of the weights of all applied edges.
func (s *State) Total() int64 { return s.total }

// Order returns a copy of the visited vertices in the order they joined.
func (s *State) Order() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)

	return out
}
