package storage

import (
	"fmt"
	"sync"
	"testing"

	"github.com/aabbfive/ChordDHT/internal/keyspace"
)

func TestInMemoryStore_GetPut(t *testing.T) {
	store := NewInMemoryStore()

	store.Put(42, []byte("value1"))

	v, ok := store.Get(42)
	if !ok {
		t.Fatal("Expected key to be present")
	}
	if string(v) != "value1" {
		t.Errorf("Expected 'value1', got '%s'", string(v))
	}
}

func TestInMemoryStore_GetNotFound(t *testing.T) {
	store := NewInMemoryStore()
	if v, ok := store.Get(7); ok || v != nil {
		t.Error("Expected absent result for non-existent key")
	}
}

func TestInMemoryStore_Overwrite(t *testing.T) {
	store := NewInMemoryStore()
	store.Put(1, []byte("a"))
	store.Put(1, []byte("b"))

	v, _ := store.Get(1)
	if string(v) != "b" {
		t.Errorf("Expected overwritten value 'b', got '%s'", string(v))
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", store.Len())
	}
}

func TestInMemoryStore_Delete(t *testing.T) {
	store := NewInMemoryStore()
	store.Put(1, []byte("a"))

	if !store.Delete(1) {
		t.Error("Expected delete of present key to report true")
	}
	if _, ok := store.Get(1); ok {
		t.Error("Expected key to be gone after delete")
	}
	if store.Delete(1) {
		t.Error("Expected delete of absent key to report false")
	}
}

func TestInMemoryStore_ValuesInKeyOrder(t *testing.T) {
	store := NewInMemoryStore()
	store.Put(700, []byte("c"))
	store.Put(100, []byte("a"))
	store.Put(400, []byte("b"))

	values := store.Values()
	got := make([]string, len(values))
	for i, v := range values {
		got[i] = string(v)
	}
	want := []string{"a", "b", "c"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	entries := store.Entries()
	if len(entries) != 3 || entries[0].Key != 100 || entries[2].Key != 700 {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}

func TestInMemoryStore_CopiesValues(t *testing.T) {
	store := NewInMemoryStore()
	buf := []byte("abc")
	store.Put(1, buf)
	buf[0] = 'x'

	v, _ := store.Get(1)
	if string(v) != "abc" {
		t.Errorf("Store kept a reference to the caller's buffer: %s", v)
	}
	v[0] = 'y'
	v2, _ := store.Get(1)
	if string(v2) != "abc" {
		t.Errorf("Get returned a reference into the store: %s", v2)
	}
}

func TestInMemoryStore_ConcurrentPuts(t *testing.T) {
	store := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Put(keyspace.Key(i), []byte(fmt.Sprintf("v%d", i)))
			store.Get(keyspace.Key(i))
		}(i)
	}
	wg.Wait()

	if store.Len() != 100 {
		t.Errorf("Expected 100 entries, got %d", store.Len())
	}
}
