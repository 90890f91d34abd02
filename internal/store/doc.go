// Package store provides the storage abstraction layer for notr.
//
// The package defines the [Store] interface which abstracts all persistence
// operations, allowing different storage backends to be used interchangeably.
// Currently supported backends are BoltDB (default) and SQLite.
//
// # Store Interface
//
// The [Store] interface defines methods for:
//   - Note collection persistence (LoadNotes, SaveNotes)
//   - Configuration management (GetConfig, SaveConfig)
//
// The collection is always written wholesale: callers own the in-memory
// collection and hand the full, ordered slice to SaveNotes after every
// mutation. LoadNotes returns the collection in the same order it was
// saved. A payload that cannot be decoded is reported as
// [ErrMalformedPayload] so callers can decide whether to surface it.
//
// # Singleton Pattern
//
// Use [GetDB] to obtain the singleton store instance:
//
//	db := store.GetDB()
//	notes, err := db.LoadNotes()
//
// The storage backend is selected at build time using build tags:
//   - Default: BoltDB
//   - With -tags sqlite: SQLite via modernc.org/sqlite
package store
