// Package persistence provides snapshotting of a house model.
//
// A snapshot captures the full House > Room > Device tree as plain data
// with a version, a unique snapshot ID, and a timestamp. Snapshots are
// stored as JSON files via StateStore, or encoded to compact CBOR with
// EncodeState/DecodeState for export.
package persistence
