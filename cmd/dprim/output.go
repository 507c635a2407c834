package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/dprim/dprim"
	"github.com/katalvlaran/dprim/matrix"
	"github.com/katalvlaran/dprim/prim_kruskal"
)

// report prints the tree weight and, when path is set, writes the tree there
// as an adjacency matrix or as an edge list.
func report(res *dprim.Result, path string, edges bool) error {
	fmt.Printf("MST weight: %d\n", res.Total)
	if path == "" {
		return nil
	}
	if edges {
		return writeEdgesFile(path, res)
	}
	m, err := res.Matrix()
	if err != nil {
		return err
	}
	if err = matrix.WriteFile(path, m); err != nil {
		return err
	}
	log.Printf("[INFO] wrote %s", path)

	return nil
}

func writeEdgesFile(path string, res *dprim.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err = res.WriteEdges(f); err != nil {
		return err
	}
	log.Printf("[INFO] wrote %s", path)

	return nil
}

// sequentialResult wraps a reference algorithm's output in a Result.
func sequentialResult(n int, edges []prim_kruskal.Edge, total int64) *dprim.Result {
	res := &dprim.Result{Vertices: n, Edges: make([]dprim.Edge, len(edges)), Total: total}
	for i, e := range edges {
		res.Edges[i] = dprim.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}

	return res
}
