// Package dht is the client-facing facade of a peer: it hashes application
// keys, routes them to their owner through the ring and performs the storage
// operation there.
package dht
