package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/katalvlaran/dprim/builder"
	"github.com/katalvlaran/dprim/matrix"
)

func cmdGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	var (
		n       = fs.Int("n", 100, "vertex count")
		density = fs.Float64("density", 0.1, "extra edge probability on top of a spanning tree")
		seed    = fs.Int64("seed", time.Now().UnixNano(), "random seed")
		maxW    = fs.Int64("max", 100, "largest edge weight")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("gen: want output, got %d arguments", fs.NArg())
	}
	if *maxW < 1 {
		return fmt.Errorf("gen: -max %d must be >= 1", *maxW)
	}

	m, err := builder.BuildMatrix(*n,
		[]builder.BuilderOption{builder.WithSeed(*seed), builder.WithUniformWeight(1, *maxW)},
		builder.RandomConnected(*density))
	if err != nil {
		return err
	}
	if err = matrix.WriteFile(fs.Arg(0), m); err != nil {
		return err
	}
	log.Printf("[INFO] wrote %d vertices (seed %d) to %s", *n, *seed, fs.Arg(0))

	return nil
}
