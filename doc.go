// Package dprim documents the dprim module: a minimum spanning tree
// engine for dense, undirected, positively weighted graphs that runs Prim's
// algorithm across a group of cooperating workers.
//
// Layout:
//
//	matrix/       — row-major int64 adjacency matrices, validators and the text codec
//	partition/    — contiguous row-chunk plans for N vertices over P workers
//	tree/         — the per-worker tree state machine (Unvisited → Visited)
//	collective/   — lockstep collectives (broadcast, min-loc reduce, scatter, barrier, shrink)
//	                over in-process goroutines or net/rpc
//	dprim/        — scanner, round loop, aggregation and the in-process launcher
//	prim_kruskal/ — sequential Prim and Kruskal, used as oracles and as CLI methods
//	builder/      — deterministic graph generators for tests, benchmarks and the CLI
//	cmd/dprim/    — run / gen / hub / join command
//
// Quick start:
//
//	m, _ := matrix.ReadFile("graph.txt")
//	res, err := dprim.Run(ctx, m, 4)
//	if err != nil {
//		// *dprim.RoundError for a disconnected graph, dprim.ErrInput for bad input.
//	}
//	fmt.Println("MST weight:", res.Total)
//
// Over TCP, start `dprim hub -workers P` once and `dprim join -rank R` per worker.
package dprim
