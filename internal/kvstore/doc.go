// Package kvstore provides the small key-value persistence layer footprint
// keeps its state in.
//
// Each key is stored as its own JSON file inside a data directory
// (~/.footprint/data by default). Key features:
//   - Atomic writes via temp file and rename
//   - A cross-process advisory lockfile so concurrent CLI invocations do not
//     interleave writes
//   - A meta.json file recording the on-disk schema version (semver); a store
//     written by an incompatible major version refuses to open, and an
//     unreadable meta.json is rewritten
//
// MemoryStore implements the same Store interface for tests and for running
// without a data directory.
package kvstore
