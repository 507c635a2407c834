package dprim

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dprim/collective"
	"github.com/katalvlaran/dprim/matrix"
	"github.com/katalvlaran/dprim/partition"
)

// Run computes the MST of m with p in-process workers, each on its own
// goroutine over a shared collective.Hub. It returns the coordinator's
// outcome; when the coordinator succeeded, the first other failure.
//
// Any WithLoader option is ignored: the coordinator serves m.
func Run(ctx context.Context, m *matrix.Dense, p int, opts ...Option) (*Result, error) {
	if p < 1 {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, partition.ErrNoWorkers)
	}
	eps, _, err := collective.NewGroup(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	opts = append(opts[:len(opts):len(opts)], WithLoader(func(context.Context) (*matrix.Dense, error) {
		if m == nil {
			return nil, matrix.ErrNilMatrix
		}
		return m, nil
	}))

	var (
		g    errgroup.Group
		res  *Result
		errs = make([]error, p)
	)
	for _, ep := range eps {
		g.Go(func() error {
			r, err := NewWorker(ep, opts...).Run(ctx)
			if cerr := ep.Close(); cerr != nil {
				err = errors.Join(err, cerr)
			}
			errs[ep.Rank()] = err
			if ep.Rank() == coordinator {
				res = r
			}
			return errs[ep.Rank()]
		})
	}
	werr := g.Wait()
	if errs[coordinator] != nil {
		return res, errs[coordinator]
	}

	return res, werr
}
