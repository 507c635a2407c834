package partition

import "errors"

// Sentinel errors for plan construction and distribution.
var (
	// ErrNoVertices is returned when N < 1.
	ErrNoVertices = errors.New("partition: vertex count must be >= 1")

	// ErrNoWorkers is returned when P < 1.
	ErrNoWorkers = errors.New("partition: worker count must be >= 1")

	// ErrInvalidPlan is returned by Validate when a plan breaks totality,
	// contiguity or the size bounds.
	ErrInvalidPlan = errors.New("partition: invalid plan")

	// ErrDistribution is returned when the data handed to workers does not
	// match the plan (wrong matrix shape or block length).
	ErrDistribution = errors.New("partition: distribution does not match plan")

	// ErrRankRange is returned for a rank outside [0, P).
	ErrRankRange = errors.New("partition: rank out of range")
)

// Chunk is one worker's contiguous row range [Offset, Offset+Size).
// Size == 0 marks an idle worker.
type Chunk struct {
	Rank   int // owner id, 0..P-1
	Offset int // first global row owned
	Size   int // number of rows owned
}

// End returns the first row past the chunk.
func (c Chunk) End() int { return c.Offset + c.Size }

// Contains reports whether global row v belongs to the chunk.
func (c Chunk) Contains(v int) bool { return v >= c.Offset && v < c.End() }

// Idle reports whether the chunk owns no rows.
func (c Chunk) Idle() bool { return c.Size == 0 }
