// Package chord implements the ring membership and routing protocol of a
// Chord-style DHT: explicit join and leave, ownership of (predecessor, self],
// and lookup by walking successor links.
//
// Limitations:
// - Routing is linear in ring size (no finger table)
// - No stabilization or failure detection; peers must leave explicitly
// - Stored data does not migrate when membership changes
package chord
