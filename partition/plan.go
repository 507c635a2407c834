package partition

import (
	"fmt"

	"github.com/katalvlaran/dprim/matrix"
)

// Plan is the immutable row assignment for N vertices over P workers.
type Plan struct {
	n      int
	chunks []Chunk
}

// Build computes the row plan for n vertices and p workers.
//
// Steps:
//  1. Validate n >= 1 and p >= 1.
//  2. base = n / p, extra = n % p; rank i gets base+1 rows when i < extra.
//  3. Offsets are the running prefix sum of sizes.
//
// Complexity: O(P) time and memory.
func Build(n, p int) (Plan, error) {
	if n < 1 {
		return Plan{}, fmt.Errorf("Build(n=%d): %w", n, ErrNoVertices)
	}
	if p < 1 {
		return Plan{}, fmt.Errorf("Build(p=%d): %w", p, ErrNoWorkers)
	}

	base, extra := n/p, n%p
	chunks := make([]Chunk, p)
	offset := 0
	for i := range chunks {
		size := base
		if i < extra {
			size++
		}
		chunks[i] = Chunk{Rank: i, Offset: offset, Size: size}
		offset += size
	}

	return Plan{n: n, chunks: chunks}, nil
}

// Vertices returns N.
func (p Plan) Vertices() int { return p.n }

// Workers returns P, including idle workers.
func (p Plan) Workers() int { return len(p.chunks) }

// Active returns the number of workers that own at least one row, min(N, P).
// Active workers are always ranks [0, Active).
func (p Plan) Active() int {
	if p.n < len(p.chunks) {
		return p.n
	}

	return len(p.chunks)
}

// Chunks returns a copy of the per-rank chunks in rank order.
func (p Plan) Chunks() []Chunk {
	out := make([]Chunk, len(p.chunks))
	copy(out, p.chunks)

	return out
}

// Chunk returns the chunk of rank, or ErrRankRange.
func (p Plan) Chunk(rank int) (Chunk, error) {
	if rank < 0 || rank >= len(p.chunks) {
		return Chunk{}, fmt.Errorf("Chunk(%d): %w", rank, ErrRankRange)
	}

	return p.chunks[rank], nil
}

// Idle reports whether rank owns no rows. Out-of-range ranks are idle.
func (p Plan) Idle(rank int) bool {
	if rank < 0 || rank >= len(p.chunks) {
		return true
	}

	return p.chunks[rank].Idle()
}

// Owner returns the rank owning global row v, or -1 when v is out of range.
// Complexity: O(1); sizes differ by at most one so the owner is computed directly.
func (p Plan) Owner(v int) int {
	if v < 0 || v >= p.n || len(p.chunks) == 0 {
		return -1
	}
	workers := len(p.chunks)
	base, extra := p.n/workers, p.n%workers
	// The first extra ranks hold base+1 rows each.
	wide := extra * (base + 1)
	if v < wide {
		return v / (base + 1)
	}

	return extra + (v-wide)/base
}

// Validate re-checks the plan invariants: ranks in order, contiguous offsets
// starting at 0, sizes in {⌊N/P⌋, ⌊N/P⌋+1} and a total of exactly N rows.
func (p Plan) Validate() error {
	if p.n < 1 {
		return fmt.Errorf("Validate: %w", ErrNoVertices)
	}
	workers := len(p.chunks)
	if workers < 1 {
		return fmt.Errorf("Validate: %w", ErrNoWorkers)
	}
	base := p.n / workers
	next := 0
	for i, c := range p.chunks {
		if c.Rank != i {
			return fmt.Errorf("Validate: chunk %d has rank %d: %w", i, c.Rank, ErrInvalidPlan)
		}
		if c.Offset != next {
			return fmt.Errorf("Validate: chunk %d offset %d, want %d: %w", i, c.Offset, next, ErrInvalidPlan)
		}
		if c.Size != base && c.Size != base+1 {
			return fmt.Errorf("Validate: chunk %d size %d not in {%d,%d}: %w", i, c.Size, base, base+1, ErrInvalidPlan)
		}
		next += c.Size
	}
	if next != p.n {
		return fmt.Errorf("Validate: sizes sum to %d, want %d: %w", next, p.n, ErrInvalidPlan)
	}

	return nil
}

// Split cuts m into one flattened row block per rank, ready for a scatter.
// Idle ranks receive an empty block. The total delivered length is checked
// against N·N so a mismatch never reaches the workers.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil.
//   - ErrDistribution when m is not N×N or the blocks do not cover it exactly.
func (p Plan) Split(m *matrix.Dense) ([][]int64, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	if m.Rows() != p.n || m.Cols() != p.n {
		return nil, fmt.Errorf("Split: matrix %dx%d for %d vertices: %w", m.Rows(), m.Cols(), p.n, ErrDistribution)
	}

	parts := make([][]int64, len(p.chunks))
	total := 0
	for i, c := range p.chunks {
		if c.Idle() {
			parts[i] = []int64{}
			continue
		}
		blk, err := m.RowBlock(c.Offset, c.Size)
		if err != nil {
			return nil, fmt.Errorf("Split: rank %d: %w", i, err)
		}
		parts[i] = blk.Data()
		total += len(parts[i])
	}
	if total != p.n*p.n {
		return nil, fmt.Errorf("Split: delivered %d values, want %d: %w", total, p.n*p.n, ErrDistribution)
	}

	return parts, nil
}

// Receive wraps the block delivered to rank as its row chunk, checking that
// the length matches Size·N.
func (p Plan) Receive(rank int, block []int64) (*matrix.Dense, error) {
	c, err := p.Chunk(rank)
	if err != nil {
		return nil, err
	}
	if c.Idle() {
		return nil, fmt.Errorf("Receive: rank %d is idle: %w", rank, ErrDistribution)
	}
	if len(block) != c.Size*p.n {
		return nil, fmt.Errorf("Receive: rank %d got %d values, want %d: %w", rank, len(block), c.Size*p.n, ErrDistribution)
	}

	return matrix.NewDenseFrom(c.Size, p.n, block)
}
