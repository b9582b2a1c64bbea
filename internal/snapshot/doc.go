// Package snapshot manages point-in-time player-run summaries used for
// asynchronous opponent discovery.
//
// A Snapshot is immutable once created and leaves the pool only through
// expiry or capacity eviction. The pool itself is a plain slice value
// threaded between calls: EnforceLimits takes the current pool and returns
// a pruned one, and the caller applies it back atomically. No ambient
// shared state exists in this package.
//
// # Capacity pressure
//
// EnforceLimits runs before a new snapshot joins the pool and applies, in
// order: expiry sweep, per-player cap eviction (the target player's oldest
// snapshot goes first), and a total-capacity cleanup that removes a tenth
// of the pool (at least one snapshot) under the configured strategy.
package snapshot
