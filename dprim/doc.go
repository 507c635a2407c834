// Package dprim computes the minimum spanning tree of a dense, undirected,
// positively weighted graph by running Prim's algorithm across a fixed group
// of cooperating workers.
//
// Each worker owns a contiguous block of adjacency-matrix rows (see package
// partition). The group then runs exactly N−1 lockstep rounds:
//
//	Scan      – every worker finds its cheapest edge leaving the tree
//	Reduce    – AllReduceMinLoc picks the global minimum, lowest rank on ties
//	Broadcast – the winning worker publishes the edge as global (u, v, w)
//	Visit     – every worker applies the same edge to its own tree.State
//
// After a final barrier the coordinator (rank 0) aggregates its tree state
// into a Result. Communication goes through a collective.Transport, so the
// same round loop runs over in-process goroutines (Run) or over TCP
// (collective.Dial + Worker).
//
// Failure modes:
//   - ErrInput / ErrConfiguration are agreed by the whole group before any
//     partitioning through a header broadcast; no worker is left blocked.
//   - A disconnected graph yields *RoundError wrapping ErrDisconnected on
//     every worker, carrying the partial tree built so far.
//   - Protocol divergence, internal defects and cancellation abort the whole
//     group; blocked workers observe collective.ErrAborted.
//
// Example:
//
//	res, err := dprim.Run(ctx, m, 4)
//	if err != nil { ... }
//	fmt.Println(res.Total)
package dprim
