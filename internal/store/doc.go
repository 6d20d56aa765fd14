// Package store implements the state layer of the bookkeeper client:
// five independently persisted slices (auth, catalog, rentals,
// wishlist, profile) plus the session orchestrator that sequences
// login/logout transitions across them.
//
// # Model
//
// All transitions are synchronous and run to completion before the next
// starts; the package takes no locks and is not safe for concurrent
// use. The surrounding application (a sequential REPL) serializes all
// commands. The only suspending operation is the catalog fetch, which
// blocks the caller until the remote source answers.
//
// # Persistence
//
// Each slice snapshots itself through a storage.Store after every
// mutation. Auth and catalog use one global key each; rentals, wishlist
// and profile use one key per user. Persistence is fire-and-forget:
// failures are logged at Warn and swallowed, the in-memory state stays
// authoritative for the session.
package store
