package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dprim/collective"
	"github.com/katalvlaran/dprim/dprim"
	"github.com/katalvlaran/dprim/matrix"
)

// cmdHub serves one group until every worker has left or the group aborts.
func cmdHub(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("hub", flag.ContinueOnError)
	var (
		addr    = fs.String("addr", "127.0.0.1:7070", "listen address")
		workers = fs.Int("workers", 4, "group size")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	hub, err := collective.NewHub(*workers)
	if err != nil {
		return err
	}
	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		return err
	}
	log.Printf("[INFO] hub for %d workers listening on %s", *workers, lis.Addr())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	served := make(chan error, 1)
	go func() { served <- collective.Serve(ctx, lis, hub) }()

	select {
	case <-hub.Done():
	case err = <-served:
		if err != nil {
			return err
		}
		return ctx.Err()
	}
	cancel()
	<-served
	if err = hub.Err(); err != nil {
		return err
	}
	log.Printf("[INFO] group finished after %d steps", hub.Steps())

	return nil
}

// cmdJoin runs one worker process. Rank 0 reads the input and writes the output.
func cmdJoin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("join", flag.ContinueOnError)
	var (
		addr    = fs.String("addr", "127.0.0.1:7070", "hub address")
		rank    = fs.Int("rank", 0, "rank of this worker")
		workers = fs.Int("workers", 0, "expected group size, 0 to accept the hub's")
		strict  = fs.Bool("strict", false, "reject more workers than vertices")
		edges   = fs.Bool("edges", false, "write an edge list instead of a matrix")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rank == 0 && fs.NArg() < 1 {
		return fmt.Errorf("join: rank 0 needs an input file")
	}

	ep, err := collective.Dial(ctx, *addr, *rank)
	if err != nil {
		return err
	}
	defer ep.Close()
	if *workers > 0 && ep.Size() != *workers {
		return fmt.Errorf("join: hub has %d workers, want %d: %w", ep.Size(), *workers, dprim.ErrConfiguration)
	}
	log.Printf("[INFO] joined %s as rank %d of %d", *addr, ep.Rank(), ep.Size())

	opts := []dprim.Option{
		dprim.WithOnIdle(func(rank int) { log.Printf("[INFO] rank %d idle, exiting", rank) }),
	}
	if *strict {
		opts = append(opts, dprim.WithStrictWorkers())
	}
	if *rank == 0 {
		input := fs.Arg(0)
		opts = append(opts, dprim.WithLoader(func(context.Context) (*matrix.Dense, error) {
			return matrix.ReadFile(input)
		}))
	}

	start := time.Now()
	res, err := dprim.NewWorker(ep, opts...).Run(ctx)
	if err != nil {
		return err
	}
	log.Printf("[INFO] rank %d done in %v", ep.Rank(), time.Since(start))
	if res == nil {
		return nil
	}

	return report(res, fs.Arg(1), *edges)
}

// runLoopback runs p workers over TCP against a hub on a loopback port, the
// same wire path as hub + join in one process.
func runLoopback(ctx context.Context, m *matrix.Dense, p int, opts ...dprim.Option) (*dprim.Result, error) {
	hub, err := collective.NewHub(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dprim.ErrConfiguration, err)
	}
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	srvCtx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- collective.Serve(srvCtx, lis, hub) }()
	defer func() {
		cancel()
		<-served
	}()

	var (
		g    errgroup.Group
		res  *dprim.Result
		errs = make([]error, p)
	)
	for r := 0; r < p; r++ {
		g.Go(func() error {
			ep, err := collective.Dial(ctx, lis.Addr().String(), r)
			if err != nil {
				hub.Abort(fmt.Errorf("rank %d dial: %w", r, err))
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
	werr := g.Wait()
	if errs[0] != nil {
		return res, errs[0]
	}

	return res, werr
}
