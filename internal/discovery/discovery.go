// Package discovery resolves peer names to dialable addresses.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrNotRegistered is returned when a name has no address.
	ErrNotRegistered = errors.New("name not registered")
	// ErrConflict is returned when a static entry would be rebound.
	ErrConflict = errors.New("name bound to another address")
)

// Directory maps peer names to addresses.
type Directory interface {
	// Register binds name to addr, replacing any earlier binding.
	Register(ctx context.Context, name, addr string) error
	// Resolve returns the address bound to name.
	Resolve(ctx context.Context, name string) (string, error)
}

// Memory is a Directory held in process memory. Safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	addrs map[string]string
}

// NewMemory creates an empty directory.
func NewMemory() *Memory {
	return &Memory{addrs: make(map[string]string)}
}

// Register implements Directory.
func (m *Memory) Register(ctx context.Context, name, addr string) error {
	if name == "" || addr == "" {
		return errors.New("name and address cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addrs[name] = addr
	return nil
}

// Resolve implements Directory.
func (m *Memory) Resolve(ctx context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	addr, ok := m.addrs[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return addr, nil
}

// Names returns the registered names in sorted order.
func (m *Memory) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.addrs))
	for name := range m.addrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Static is a Directory seeded from a fixed table, typically the node
// configuration. Listed names cannot be rebound to another address; other
// names register as in Memory.
type Static struct {
	table map[string]string
	extra *Memory
}

// NewStatic creates a directory from a name to address table.
func NewStatic(table map[string]string) *Static {
	t := make(map[string]string, len(table))
	for name, addr := range table {
		t[name] = addr
	}
	return &Static{table: t, extra: NewMemory()}
}

// Register implements Directory.
func (s *Static) Register(ctx context.Context, name, addr string) error {
	if listed, ok := s.table[name]; ok {
		if listed != addr {
			return fmt.Errorf("%w: %s is %s, not %s", ErrConflict, name, listed, addr)
		}
		return nil
	}
	return s.extra.Register(ctx, name, addr)
}

// Resolve implements Directory.
func (s *Static) Resolve(ctx context.Context, name string) (string, error) {
	if addr, ok := s.table[name]; ok {
		return addr, nil
	}
	return s.extra.Resolve(ctx, name)
}
