// Package keyspace defines the circular key space peers and stored keys are
// hashed into, and the circular interval test used for ownership.
package keyspace
