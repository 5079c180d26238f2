// Package app provides the orchestration layer for tally.
//
// # Overview
//
// This package wires configuration, logging, the key-value store, the counter
// state and the UI together. It is the composition root and the only place
// that knows the concrete storage backend.
//
// # Lifecycle
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/tally/config.toml
//	       ├─────> openLogger()         zerolog JSON lines to log_file
//	       ├─────> kv.Open()            file, bolt or memory backend
//	       ├─────> mount()
//	       │         ├─> state.Restore()   seed count/history from the slot
//	       │         ├─> state.Mirror()    write count now and on change
//	       │         └─> input.Bind()      one arrow-key listener per step
//	       ├─────> ui.Run()             Bubble Tea program (blocks)
//	       └─────> unmount()            detach listener, stop mirror
//
// Mounting happens exactly once per Run. The persisted value outlives the
// widget; history and step do not.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid
//   - Unknown storage backend from config or flags
//   - Log file or store cannot be opened
//   - The Bubble Tea program fails
//
// Recoverable errors (logged, the widget keeps running):
//   - Count writes to the store
//   - Theme preference writes
//
// A malformed or unreadable stored count is not an error: the counter starts
// at zero as if nothing had been stored.
package app
