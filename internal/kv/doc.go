// Package kv provides the durable key-value stores tally persists into.
//
// # Overview
//
// The counter widget only ever needs a handful of string values that outlive a
// session: the current count and the theme preference. Rather than tying the
// widget to one storage technology, it talks to the small Store interface
// defined here and the composition root picks a backend at startup.
//
// # Backends
//
//   - Memory: map-backed, nothing survives the process. Used by tests and by
//     storage = "memory".
//   - File: a TOML document of string values, the default. Loaded once when
//     opened and rewritten in full on every Set.
//   - Bolt: a bbolt database holding a single bucket.
//
// # Semantics
//
// Get reports whether a key is present separately from the error so callers
// can treat "absent" and "unreadable" differently if they want to. Values are
// opaque strings; parsing them is the caller's job.
//
// Stores are not safe for concurrent use from multiple goroutines except Bolt,
// which inherits bbolt's transaction locking. tally calls them only from the
// Bubble Tea update loop.
package kv
