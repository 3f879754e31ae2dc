// Package store persists the event collection.
//
// Storage is a plain key-value table. The whole collection is one JSON
// array under a single key ("events" by default):
//
//	[{"id":"1735689600000","title":"Fair","date":"2025-01-01",
//	  "location":"Hall","description":"Annual"}]
//
// # Backends
//
//   - Store: SQLite file via mattn/go-sqlite3 (WAL, busy_timeout=5000)
//   - Memory: in-process map, used by the scenario harness
//
// # Accessor contract
//
// Events.Load never fails. An absent key or unreadable content is treated as
// an empty collection. Events.Save rewrites the whole array; there is no
// merge, no partial write and no schema versioning of the document.
package store
