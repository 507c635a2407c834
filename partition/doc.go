// Package partition splits the rows of an N×N adjacency matrix across P
// workers.
//
// What & Why
//
//   - Every worker owns one contiguous block of rows (a row chunk) for the
//     whole run. Chunk sizes are ⌊N/P⌋ or ⌊N/P⌋+1; the first N mod P ranks
//     take the extra row.
//   - Build is a pure function of (N, P). Workers compute the plan on their
//     own and never exchange it, so two workers given the same inputs always
//     agree on who owns which row.
//   - When P > N the ranks N..P-1 get empty chunks. They are idle and must
//     leave the collective group before the first round (see Plan.Active).
//
// Split produces the per-rank row blocks a coordinator hands to Scatter and
// checks them against the plan, so a chunk/displacement mismatch is caught
// before any data moves.
package partition
