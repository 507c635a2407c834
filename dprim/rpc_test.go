package dprim_test

import (
	"context"
	"net"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dprim/collective"
	"github.com/katalvlaran/dprim/dprim"
	"github.com/katalvlaran/dprim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runOverRPC runs p workers, each with its own TCP connection to one hub.
func runOverRPC(t *testing.T, m *matrix.Dense, p int, opts ...dprim.Option) (*dprim.Result, []error) {
	t.Helper()
	hub, err := collective.NewHub(p)
	require.NoError(t, err)
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	served := make(chan error, 1)
	go func() { served <- collective.Serve(ctx, lis, hub) }()

	var (
		g    errgroup.Group
		res  *dprim.Result
		errs = make([]error, p)
	)
	for r := 0; r < p; r++ {
		g.Go(func() error {
			ep, err := collective.Dial(ctx, lis.Addr().String(), r)
			if err != nil {
				errs[r] = err
				return err
			}
			wopts := append([]dprim.Option(nil), opts...)
			if r == 0 {
				wopts = append(wopts, dprim.WithLoader(func(context.Context) (*matrix.Dense, error) { return m, nil }))
			}
			out, err := dprim.NewWorker(ep, wopts...).Run(ctx)
			if r == 0 {
				res = out
			}
			if cerr := ep.Close(); err == nil {
				err = cerr
			}
			errs[r] = err
			return err
		})
	}
	_ = g.Wait()
	<-hub.Done()
	cancel()
	require.NoError(t, <-served)

	return res, errs
}

// TestRPCParity: the TCP backend gives the same tree as the in-process one.
func TestRPCParity(t *testing.T) {
	m := randomGraph(t, 19, 0.3, 4)
	want, err := dprim.Run(context.Background(), m, 4)
	require.NoError(t, err)

	for _, p := range []int{1, 4, 25} {
		got, errs := runOverRPC(t, m, p)
		for r, err := range errs {
			require.NoError(t, err, "P=%d rank %d", p, r)
		}
		assert.Equal(t, want, got, "P=%d", p)
	}
}

// TestRPCDisconnected: RoundError semantics survive the wire on every rank.
func TestRPCDisconnected(t *testing.T) {
	m := mustSquare(t, [][]int64{
		{0, 3, 0, 0},
		{3, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	res, errs := runOverRPC(t, m, 2)
	assert.Nil(t, res)
	for r, err := range errs {
		var rerr *dprim.RoundError
		require.ErrorAs(t, err, &rerr, "rank %d", r)
		assert.Equal(t, 1, rerr.Round)
		assert.ErrorIs(t, err, dprim.ErrDisconnected)
	}
}
