package storage

import (
	"sync"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/utils"

	"github.com/aabbfive/ChordDHT/internal/keyspace"
)

// Entry is a stored key/value pair.
type Entry struct {
	Key   keyspace.Key
	Value []byte
}

// Store defines the interface for a peer's local storage.
type Store interface {
	// Get retrieves a value by key. The boolean is false if the key is absent.
	Get(key keyspace.Key) ([]byte, bool)
	// Put stores a value, overwriting any previous value for the key.
	Put(key keyspace.Key, value []byte)
	// Delete removes a key. Returns false if the key was absent.
	Delete(key keyspace.Key) bool
	// Values returns all stored values in ascending key order.
	Values() [][]byte
	// Entries returns all stored entries in ascending key order.
	Entries() []Entry
	// Len returns the number of stored keys.
	Len() int
}

// InMemoryStore is an in-memory implementation of Store.
// It's thread-safe; readers run concurrently.
type InMemoryStore struct {
	mu   sync.RWMutex
	tree *avltree.Tree
}

// NewInMemoryStore creates a new in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		tree: avltree.NewWith(utils.UInt64Comparator),
	}
}

// Get retrieves a value by key.
func (s *InMemoryStore) Get(key keyspace.Key) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, found := s.tree.Get(uint64(key))
	if !found {
		return nil, false
	}
	// Return a copy to avoid external modifications
	return append([]byte(nil), v.([]byte)...), true
}

// Put stores a value.
func (s *InMemoryStore) Put(key keyspace.Key, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree.Put(uint64(key), append([]byte(nil), value...))
}

// Delete removes a key.
func (s *InMemoryStore) Delete(key keyspace.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.tree.Get(uint64(key)); !found {
		return false
	}
	s.tree.Remove(uint64(key))
	return true
}

// Values returns copies of all values in key order.
func (s *InMemoryStore) Values() [][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw := s.tree.Values()
	values := make([][]byte, 0, len(raw))
	for _, v := range raw {
		values = append(values, append([]byte(nil), v.([]byte)...))
	}
	return values
}

// Entries returns copies of all entries in key order.
func (s *InMemoryStore) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, s.tree.Size())
	it := s.tree.Iterator()
	for it.Next() {
		entries = append(entries, Entry{
			Key:   keyspace.Key(it.Key().(uint64)),
			Value: append([]byte(nil), it.Value().([]byte)...),
		})
	}
	return entries
}

// Len returns the number of stored keys.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Size()
}
