// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dprim/matrix"
)

// ErrInvalidGraph indicates that MST algorithms require a square, symmetric,
// non-negative adjacency matrix. The matrix validation error is wrapped.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a symmetric non-negative adjacency matrix")

// ErrRootOutOfRange indicates that the Prim root is not a vertex of the graph.
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrTotalOverflow indicates that the MST weight does not fit an int64.
var ErrTotalOverflow = errors.New("prim_kruskal: total weight overflows int64")

// ErrUnknownMethod is returned by Compute for a Method it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects dense Prim (grow from a root, O(V²)).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is an undirected MST edge between vertex indices.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   int    — start vertex for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal with root 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(m).
//	– MethodPrim:    Prim(m, opts.Root).
//	– Otherwise:     ErrUnknownMethod.
func Compute(m *matrix.Dense, opts MSTOptions) ([]Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(m)
	case MethodPrim:
		return Prim(m, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%q: %w", opts.Method, ErrUnknownMethod)
	}
}

// validate applies the adjacency contract shared by both algorithms.
func validate(m *matrix.Dense) error {
	if err := matrix.ValidateAdjacency(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	return nil
}
