package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/katalvlaran/dprim/dprim"
	"github.com/katalvlaran/dprim/matrix"
	"github.com/katalvlaran/dprim/prim_kruskal"
)

const (
	methodDistributed = "distributed"
	transportLocal    = "local"
	transportRPC      = "rpc"
)

func cmdRun(ctx context.Context, args []string) (err error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	var (
		workers   = fs.Int("workers", 4, "number of workers")
		transport = fs.String("transport", transportLocal, "collective backend: local or rpc")
		method    = fs.String("method", methodDistributed, "distributed, prim or kruskal")
		strict    = fs.Bool("strict", false, "reject more workers than vertices")
		edges     = fs.Bool("edges", false, "write an edge list instead of a matrix")
		prof      = fs.String("profile", "", "write a cpu or mem profile")
	)
	if err = fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		return fmt.Errorf("run: want input [output], got %d arguments", fs.NArg())
	}
	input, output := fs.Arg(0), fs.Arg(1)

	stopProfile, err := startProfile(*prof)
	if err != nil {
		return err
	}
	defer stopProfile()

	start := time.Now()
	m, err := matrix.ReadFile(input)
	if err != nil {
		return fmt.Errorf("%w: %w", dprim.ErrInput, err)
	}
	log.Printf("[INFO] read %d vertices from %s in %v", m.Rows(), input, time.Since(start))

	start = time.Now()
	var res *dprim.Result
	switch *method {
	case methodDistributed:
		res, err = runDistributed(ctx, m, *workers, *transport, *strict)
	case prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
		var (
			es    []prim_kruskal.Edge
			total int64
		)
		es, total, err = prim_kruskal.Compute(m, prim_kruskal.NewOptions(prim_kruskal.WithMethod(*method)))
		if err == nil {
			res = sequentialResult(m.Rows(), es, total)
		}
	default:
		return fmt.Errorf("run: unknown method %q", *method)
	}
	if err != nil {
		var rerr *dprim.RoundError
		if errors.As(err, &rerr) && rerr.Partial != nil {
			log.Printf("[ERROR] stopped at round %d with %d edges (weight %d)",
				rerr.Round, len(rerr.Partial.Edges), rerr.Partial.Total)
		}
		return err
	}
	log.Printf("[INFO] %s MST computed in %v", *method, time.Since(start))

	return report(res, output, *edges)
}

// runDistributed runs the worker group over the chosen backend and logs how
// many rounds each rank took part in.
func runDistributed(ctx context.Context, m *matrix.Dense, p int, transport string, strict bool) (*dprim.Result, error) {
	if p < 1 {
		return nil, fmt.Errorf("run: -workers %d: %w", p, dprim.ErrConfiguration)
	}
	rounds := make([]int, p)
	opts := []dprim.Option{
		dprim.WithOnRound(func(rank, _ int, _ dprim.Edge) { rounds[rank]++ }),
		dprim.WithOnIdle(func(rank int) { log.Printf("[INFO] rank %d idle, exiting", rank) }),
	}
	if strict {
		opts = append(opts, dprim.WithStrictWorkers())
	}

	var (
		res *dprim.Result
		err error
	)
	switch transport {
	case transportLocal:
		res, err = dprim.Run(ctx, m, p, opts...)
	case transportRPC:
		res, err = runLoopback(ctx, m, p, opts...)
	default:
		return nil, fmt.Errorf("run: unknown transport %q", transport)
	}
	if err == nil {
		for rank, n := range rounds {
			if n > 0 {
				log.Printf("[INFO] rank %d: %d rounds", rank, n)
			}
		}
	}

	return res, err
}
