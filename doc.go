// Package art implements the Allotment Routing Table algorithm: a
// heap-indexed multibit trie that answers longest-prefix-match and
// exact-match queries in time independent of the number of routes it
// holds.
//
// Two trie variants are supported, selected at construction time through
// Config.Compressed: a simple multibit trie, and a path-compressed trie
// that collapses chains of subtables with a single child down to one
// subtable carrying the skipped address bits as a cached prefix.
//
// The table is not safe for concurrent use without external
// synchronization; see Table for details.
package art
