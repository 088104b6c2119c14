// Package storage provides the local key-value storage interface and
// in-memory implementation. Entries are keyed by hashed ring key and held in
// key order so a peer reports its values deterministically.
package storage
