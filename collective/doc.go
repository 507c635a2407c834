// Package collective provides the lockstep operations a fixed group of
// workers needs to run a round-synchronous algorithm: broadcast from a rank,
// all-reduce to the minimum with its owner (MINLOC), scatter, barrier and a
// shrink step that lets surplus workers leave cleanly.
//
// Every backend funnels into a Hub. A Hub runs one collective step at a time:
// each current member arrives with the same operation kind and root, the last
// arrival computes the replies, and everyone is released together. A member
// that arrives with a different operation, arrives twice, or leaves while a
// step is pending is a protocol violation; the hub then aborts and every
// blocked caller returns ErrAborted instead of hanging.
//
// Backends:
//
//	NewGroup(p)          — p in-process endpoints sharing one Hub (goroutine workers).
//	Serve / Dial         — the Hub behind net/rpc; each worker process dials it over TCP.
//
// Both return *Endpoint, which implements Transport.
package collective
